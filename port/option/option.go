// Package option implements the functional option pattern used for configuring the iterators of this module.
package option

// Option changes a Config. Constructors accept them as a variadic tail.
type Option[Config any] interface {
	Configure(*Config)
}

// Func adapts a plain function to an Option.
type Func[Config any] func(*Config)

func (fn Func[Config]) Configure(c *Config) {
	if fn != nil {
		fn(c)
	}
}

// ToConfig builds a Config from its defaults and the given options.
// A Config with an `Init()` method on its pointer receiver gets it called first,
// then the options are applied in order, so a later option wins over an earlier one.
// Nil options are skipped.
func ToConfig[Config any, Opt Option[Config]](opts []Opt) Config {
	var conf Config
	if d, ok := any(&conf).(defaulter); ok {
		d.Init()
	}
	for _, opt := range opts {
		if any(opt) == nil {
			continue
		}
		opt.Configure(&conf)
	}
	return conf
}

type defaulter interface {
	Init()
}
