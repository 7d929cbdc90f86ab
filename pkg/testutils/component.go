package testutils

// CompX and CompY carry a single string so query results are easy to read in assertions.
type CompX struct {
	F string `json:"f" yaml:"f" msgpack:"f"`
}

func (CompX) Name() string { return "comp_x" }

type CompY struct {
	F string `json:"f" yaml:"f" msgpack:"f"`
}

func (CompY) Name() string { return "comp_y" }

type Position struct {
	X, Y, Z float64
}

func (Position) Name() string { return "position" }

type Velocity struct {
	X, Y, Z float64
}

func (Velocity) Name() string { return "velocity" }

type Health struct {
	Value int
}

func (Health) Name() string { return "health" }

type Tag struct {
	Label string
}

func (Tag) Name() string { return "tag" }

// Inventory holds nested data so codecs get exercised beyond flat structs.
type Inventory struct {
	Owner string
	Slots []Item
	Gold  uint64
}

type Item struct {
	ID    uint32
	Count uint16
}

func (Inventory) Name() string { return "inventory" }
