package sparselife

import "slices"

var builtin = map[string]string{
	"glider": `#N Glider
x = 3, y = 3, rule = B3/S23
bo$2bo$3o!`,
	"blinker": `#N Blinker
x = 3, y = 1, rule = B3/S23
3o!`,
	"block": `#N Block
x = 2, y = 2, rule = B3/S23
2o$2o!`,
	"r-pentomino": `#N R-pentomino
x = 3, y = 3, rule = B3/S23
b2o$2o$bo!`,
	"acorn": `#N Acorn
x = 7, y = 3, rule = B3/S23
bo5b$3bo3b$2o2b3o!`,
	"diehard": `#N Die hard
x = 8, y = 3, rule = B3/S23
6bob$2o6b$bo3b3o!`,
	"lwss": `#N Lightweight spaceship
x = 5, y = 4, rule = B3/S23
bo2bo$o4b$o3bo$4o!`,
	"gosper-glider-gun": `#N Gosper glider gun
x = 36, y = 9, rule = B3/S23
24bo$22bobo$12b2o6b2o12b2o$11bo3bo4b2o12b2o$2o8bo5bo3b2o$2o8bo3bob2o4b
obo$10bo5bo7bo$11bo3bo$12b2o!`,
	"lwss-tagalong": `#N LWSS tagalong
#O David Bell
#C A tagalong for two lightweight, middleweight, or heavyweight spaceships.
x = 25, y = 19, rule = b3/s23
21bo3b$18b4o3b$13bo2bob2o5b$13bo11b$4o8bo3bob2o5b$o3bo5b2ob2obobob5o$o
9b2obobobo2b5o$bo2bo2b2o2bo3b3o2bob2ob$6bo2bob2o12b$6bo4b2o12b$6bo2bob
2o12b$bo2bo2b2o2bo3b3o2bob2ob$o9b2obobobo2b5o$o3bo5b2ob2obobob5o$4o8bo
3bob2o5b$13bo11b$13bo2bob2o5b$18b4o3b$21bo!`,
}

// Patterns returns the names of the built-in patterns in sorted order.
func Patterns() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Pattern returns the RLE text of a built-in pattern.
func Pattern(name string) (string, bool) {
	p, ok := builtin[name]
	return p, ok
}
