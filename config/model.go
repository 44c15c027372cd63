package config

// Table is a curve as written in a profile. Cells may be numbers or numeric
// strings.
type Table struct {
	Interpolation string  `yaml:"interpolation"`
	Points        [][]any `yaml:"points"`
}

type AtmosphereConfig struct {
	Pressure    Table `yaml:"pressure"`
	Temperature Table `yaml:"temperature"`
}

type BodyConfig struct {
	Mu             float64           `yaml:"mu"`
	Radius         float64           `yaml:"radius"`
	RotationPeriod float64           `yaml:"rotation_period"`
	Atmosphere     *AtmosphereConfig `yaml:"atmosphere,omitempty"`
}

type EngineConfig struct {
	Thrust Table `yaml:"thrust"`
	Isp    Table `yaml:"isp"`
}

type StageConfig struct {
	Engine    string  `yaml:"engine"`
	MassTotal float64 `yaml:"mass_total"`
	FuelMass  float64 `yaml:"fuel_mass"`
}

type LaunchSiteConfig struct {
	Body      string  `yaml:"body"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Altitude  float64 `yaml:"altitude"`
}

type Profile struct {
	Bodies      map[string]BodyConfig       `yaml:"bodies"`
	Engines     map[string]EngineConfig     `yaml:"engines"`
	Stages      map[string]StageConfig      `yaml:"stages"`
	LaunchSites map[string]LaunchSiteConfig `yaml:"launch_sites"`
}

// Env is read from CHRYSAOR_* variables.
type Env struct {
	Config          string `envconfig:"CONFIG" default:"chrysaor.yaml"`
	CacheTTL        string `envconfig:"CACHE_TTL"`
	DuplicatePolicy string `envconfig:"DUPLICATE_POLICY" default:"last"`
}
