package puzzle_test

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/plus3/pentomino/puzzle"
)

func ExampleEngine() {
	clock := puzzle.NewManualClock()
	engine, err := puzzle.NewEngine(puzzle.DefaultConfig(),
		puzzle.WithClock(clock),
		puzzle.WithRand(rand.New(rand.NewPCG(7, 7))),
		puzzle.WithListener(puzzle.ListenerFuncs{
			TimeUpdated: func(seconds int) {
				if seconds%100 == 0 {
					fmt.Println("time:", seconds)
				}
			},
		}),
	)
	if err != nil {
		panic(err)
	}

	engine.StartGame()

	// any piece fits the top-left corner of an empty board
	piece := engine.Pool()[0]
	fmt.Println("placed:", engine.AttemptPlace(piece.ID, 0, 0))

	covered := 0
	for _, row := range engine.Grid() {
		for _, id := range row {
			if id == piece.ID {
				covered++
			}
		}
	}
	fmt.Println("covered:", covered)
	fmt.Println("offered:", len(engine.Pool()))

	clock.Advance(100 * time.Second)
	fmt.Println(engine.State(), engine.TimeRemaining())

	// Output:
	// time: 300
	// placed: true
	// covered: 5
	// offered: 3
	// time: 200
	// running 200
}

func ExampleShape_RotateClockwise() {
	shape := puzzle.BaseShape(puzzle.KindL)
	fmt.Println(shape)
	fmt.Println()
	fmt.Println(shape.RotateClockwise())

	// Output:
	// #.
	// #.
	// #.
	// ##
	//
	// ####
	// #...
}
