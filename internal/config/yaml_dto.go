package config

// YAMLRun is the on-disk shape of a run file. Exactly one of Points and
// Grid must be set.
type YAMLRun struct {
	Boundary      string      `yaml:"boundary" validate:"required"`
	Contribution  string      `yaml:"contribution" validate:"required,oneof=initial boundary source"`
	Dimension     int         `yaml:"dimension" validate:"required,oneof=1 2 3"`
	Length        float64     `yaml:"length" validate:"gt=0"`
	Diffusivity   float64     `yaml:"diffusivity" validate:"gt=0"`
	Params        YAMLParams  `yaml:"params"`
	Tolerance     float64     `yaml:"tolerance" validate:"gt=0,lt=1"`
	Method        string      `yaml:"method" validate:"omitempty,oneof=forward kahan"`
	MaxIterations int         `yaml:"max_iterations" validate:"omitempty,gt=0"`
	Workers       int         `yaml:"workers" validate:"omitempty,gt=0,lte=1024"`
	Times         []float64   `yaml:"times" validate:"required,min=1,dive,gte=0"`
	Points        []YAMLPoint `yaml:"points" validate:"dive"`
	Grid          *YAMLGrid   `yaml:"grid"`
}

type YAMLParams struct {
	A0 float64 `yaml:"a0"`
	A1 float64 `yaml:"a1"`
	A2 float64 `yaml:"a2"`
	K1 float64 `yaml:"k1"`
	K2 float64 `yaml:"k2"`
}

type YAMLPoint struct {
	X float64 `yaml:"x" validate:"gte=0"`
	Y float64 `yaml:"y" validate:"gte=0"`
	Z float64 `yaml:"z" validate:"gte=0"`
}

// YAMLGrid samples Count points from From to To along x, with y and z
// fixed.
type YAMLGrid struct {
	From  float64 `yaml:"from" validate:"gte=0"`
	To    float64 `yaml:"to" validate:"gtefield=From"`
	Count int     `yaml:"count" validate:"gt=0,lte=100000"`
	Y     float64 `yaml:"y" validate:"gte=0"`
	Z     float64 `yaml:"z" validate:"gte=0"`
}
