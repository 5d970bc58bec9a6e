package blog

import "errors"

// Config holds the parameters for Open.
type Config struct {
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// DatabaseFile is the SQLite file name created inside DataDir.
const DatabaseFile = "blog.db"

// Config validation errors.
var (
	ErrDataDirEmpty = errors.New("data dir must not be empty")
)

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}
