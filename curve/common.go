package curve

import (
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// NewCommonStorage keeps one yaml file per curve key under root.
func NewCommonStorage[P any](root string) *CommStorage[P] {
	return &CommStorage[P]{
		root: root,
	}
}

type CommStorage[P any] struct {
	root string
}

func (stg *CommStorage[P]) fileNameByKey(key string) string {
	return path.Join(stg.root, key+".yaml")
}

func (stg *CommStorage[P]) Load(key string) (ps []P, err error) {
	d, err := os.ReadFile(stg.fileNameByKey(key))
	if err != nil {
		return
	}

	err = yaml.Unmarshal(d, &ps)

	return
}

func (stg *CommStorage[P]) Save(key string, ps []P) (err error) {
	_ = os.MkdirAll(stg.root, 0700)

	d, err := yaml.Marshal(ps)
	if err != nil {
		return
	}

	err = os.WriteFile(stg.fileNameByKey(key), d, 0600)

	return
}

// LoadCurve reads the samples stored under key and builds a curve from them.
func LoadCurve[P Point[P]](storage Storage[P], key string, opts ...Option) (*Curve[P], error) {
	ps, err := storage.Load(key)
	if err != nil {
		return nil, err
	}

	return NewCurve(ps, opts...)
}
