package test

import (
	"math"
	"math/rand"

	"github.com/jaswdr/faker"
	"github.com/onsi/ginkgo/v2"
)

var (
	Source = rand.NewSource(ginkgo.GinkgoRandomSeed())
	Faker  = faker.NewWithSeed(Source)
	Rand   = rand.New(Source)
)

// RandomAmount returns a positive monetary amount with two decimal places.
func RandomAmount(min, max int) float64 {
	whole := Faker.IntBetween(min, max)
	cents := Faker.IntBetween(0, 99)
	return math.Round((float64(whole)+float64(cents)/100)*100) / 100
}
