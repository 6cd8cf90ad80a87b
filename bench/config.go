package bench

const (
	defaultMatrixSize     = 200
	defaultHashBytes      = 10 << 20
	defaultSearchRepeats  = 100000
	defaultSearchPattern  = "fox"
	defaultCopyBytes      = 50 << 20
	defaultPolyIterations = 10000000
	defaultPolyX0         = 1.5
	defaultPolyStep       = 0.0001
)

var defaultCoeffs = []float64{1.0, 2.5, -3.2, 4.8, -1.5, 2.0, -0.5}

// Config holds the workload parameters for one benchmark run.
// Zero fields are replaced by the fixed sizes of the original suite.
type Config struct {
	MatrixSize     int       `json:"matrix_size"`
	HashBytes      int       `json:"hash_bytes"`
	SearchRepeats  int       `json:"search_repeats"`
	SearchPattern  string    `json:"search_pattern"`
	CopyBytes      int       `json:"copy_bytes"`
	PolyIterations int       `json:"poly_iterations"`
	PolyCoeffs     []float64 `json:"poly_coeffs"`
	PolyX0         float64   `json:"poly_x0"`
	PolyStep       float64   `json:"poly_step"`
	ForceGeneric   bool      `json:"force_generic,omitempty"`
}

// DefaultConfig returns the standard workload: a 200x200 matrix product,
// a 10 MiB hash, 100000 pangram repetitions searched for "fox", a 50 MiB
// copy, and ten million polynomial evaluations.
func DefaultConfig() Config {
	return normalizeConfig(Config{})
}

func normalizeConfig(cfg Config) Config {
	if cfg.MatrixSize <= 0 {
		cfg.MatrixSize = defaultMatrixSize
	}

	if cfg.HashBytes <= 0 {
		cfg.HashBytes = defaultHashBytes
	}

	if cfg.SearchRepeats <= 0 {
		cfg.SearchRepeats = defaultSearchRepeats
	}

	if cfg.SearchPattern == "" {
		cfg.SearchPattern = defaultSearchPattern
	}

	if cfg.CopyBytes <= 0 {
		cfg.CopyBytes = defaultCopyBytes
	}

	if cfg.PolyIterations <= 0 {
		cfg.PolyIterations = defaultPolyIterations
	}

	if len(cfg.PolyCoeffs) == 0 {
		cfg.PolyCoeffs = append([]float64(nil), defaultCoeffs...)
	}

	if cfg.PolyX0 == 0 {
		cfg.PolyX0 = defaultPolyX0
	}

	if cfg.PolyStep == 0 {
		cfg.PolyStep = defaultPolyStep
	}

	return cfg
}
