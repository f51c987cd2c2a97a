// Stress test timing physics steps with every sphere colliding against
// every other.
package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"vertex/internal/linalg"
	"vertex/internal/physics"
)

func main() {
	// Test various object counts
	testCounts := []int{50, 100, 250, 500, 1000}

	for _, count := range testCounts {
		if err := testStep(count); err != nil {
			fmt.Printf("%5d bodies: ERROR: %v\n", count, err)
		}
	}
}

func testStep(count int) error {
	rng := rand.New(rand.NewPCG(42, 42)) // Consistent results

	// Spawn in a cube, size scales with count to keep density reasonable
	spawnSize := 50.0 + float64(count)/100.0

	world := physics.NewWorld(nil)
	bodies := make([]*physics.RigidBody, count)
	for i := range bodies {
		bodies[i] = physics.NewRigidBody(physics.BodyOptions{
			Position: linalg.NewVector(
				rng.Float64()*spawnSize-spawnSize/2,
				rng.Float64()*spawnSize-spawnSize/2,
				rng.Float64()*spawnSize-spawnSize/2,
			),
			Forces: []physics.Named[*linalg.Vector]{
				{Name: "velocity", Value: linalg.NewVector(rng.Float64()-0.5, rng.Float64()-0.5, rng.Float64()-0.5)},
			},
			Transforms: []physics.Named[physics.Transform]{
				{Name: "move", Value: physics.Integrate("velocity")},
			},
			SphereRadius: 1 + rng.Float64(), // 0.5 to 1.0 after halving
		})
		if err := world.Add(fmt.Sprint(i), bodies[i], nil); err != nil {
			return err
		}
	}

	// Naive O(n²): one collider per pair
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			c := physics.NewSphereCollider(bodies[i], bodies[j], nil)
			if err := world.AddCollider(fmt.Sprint(i), fmt.Sprint(j), c); err != nil {
				return err
			}
		}
	}

	// Warm up
	if _, err := world.Step(1); err != nil {
		return err
	}

	const iterations = 10
	start := time.Now()
	var stats physics.StepStats
	for range iterations {
		var err error
		if stats, err = world.Step(1); err != nil {
			return err
		}
	}
	elapsed := time.Since(start) / iterations

	fmt.Printf("%5d bodies: %10v per step (%7d checks, %4d contacts)\n",
		count, elapsed.Round(time.Microsecond), stats.Checked, stats.Contacts)
	return nil
}
