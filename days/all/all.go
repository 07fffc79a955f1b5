// Package all links every daily solver into the puzzle registry.
package all

import (
	_ "github.com/katalvlaran/aoc2023/days/day01"
	_ "github.com/katalvlaran/aoc2023/days/day02"
	_ "github.com/katalvlaran/aoc2023/days/day03"
	_ "github.com/katalvlaran/aoc2023/days/day04"
	_ "github.com/katalvlaran/aoc2023/days/day05"
	_ "github.com/katalvlaran/aoc2023/days/day06"
	_ "github.com/katalvlaran/aoc2023/days/day07"
	_ "github.com/katalvlaran/aoc2023/days/day08"
	_ "github.com/katalvlaran/aoc2023/days/day09"
	_ "github.com/katalvlaran/aoc2023/days/day10"
	_ "github.com/katalvlaran/aoc2023/days/day11"
	_ "github.com/katalvlaran/aoc2023/days/day12"
	_ "github.com/katalvlaran/aoc2023/days/day13"
	_ "github.com/katalvlaran/aoc2023/days/day14"
	_ "github.com/katalvlaran/aoc2023/days/day15"
	_ "github.com/katalvlaran/aoc2023/days/day16"
	_ "github.com/katalvlaran/aoc2023/days/day17"
	_ "github.com/katalvlaran/aoc2023/days/day18"
	_ "github.com/katalvlaran/aoc2023/days/day19"
	_ "github.com/katalvlaran/aoc2023/days/day20"
)
