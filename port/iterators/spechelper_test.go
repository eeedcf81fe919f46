package iterators_test

import (
	"go.llib.dev/testcase/random"
)

var rnd = random.New(random.CryptoSeed{})
