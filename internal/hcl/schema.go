package hcl

// fileRoot is the set of attributes and blocks any settings file may hold.
type fileRoot struct {
	Seed            *int64          `hcl:"seed,optional"`
	AncientElements *[]string       `hcl:"ancient_elements,optional"`
	MatchThree      *boardBlock     `hcl:"match_three,block"`
	MatchWord       *boardBlock     `hcl:"match_word,block"`
	BoxEatsPlants   *sizeBlock      `hcl:"box_eats_plants,block"`
	Elements        []*elementBlock `hcl:"element,block"`
	Server          *serverBlock    `hcl:"server,block"`
}

type boardBlock struct {
	Width    *int      `hcl:"width,optional"`
	Height   *int      `hcl:"height,optional"`
	Keywords *[]string `hcl:"keywords,optional"`
}

type sizeBlock struct {
	Width  *int `hcl:"width,optional"`
	Height *int `hcl:"height,optional"`
}

type elementBlock struct {
	Name         string   `hcl:"name,label"`
	DoubleDamage []string `hcl:"double_damage,optional"`
	HalfDamage   []string `hcl:"half_damage,optional"`
}

type serverBlock struct {
	Listen *string `hcl:"listen,optional"`
}

// defaultsDoc mirrors config.Settings for the `defaults` variable.
type defaultsDoc struct {
	Seed            int64             `cty:"seed"`
	AncientElements []string          `cty:"ancient_elements"`
	MatchThree      defaultsBoard     `cty:"match_three"`
	MatchWord       defaultsBoard     `cty:"match_word"`
	BoxEatsPlants   defaultsSize      `cty:"box_eats_plants"`
	Elements        []defaultsElement `cty:"elements"`
	Server          defaultsServer    `cty:"server"`
}

type defaultsBoard struct {
	Width    int      `cty:"width"`
	Height   int      `cty:"height"`
	Keywords []string `cty:"keywords"`
}

type defaultsSize struct {
	Width  int `cty:"width"`
	Height int `cty:"height"`
}

type defaultsElement struct {
	Name         string   `cty:"name"`
	DoubleDamage []string `cty:"double_damage"`
	HalfDamage   []string `cty:"half_damage"`
}

type defaultsServer struct {
	Listen string `cty:"listen"`
}
