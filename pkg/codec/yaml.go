package codec

import (
	"gopkg.in/yaml.v3"

	"github.com/ib-77/vtx/pkg/rop"
	"github.com/ib-77/vtx/pkg/vt"
)

// YAML decodes a YAML document into T and encodes T back to YAML.
func YAML[T any]() vt.Reversible[[]byte, T] {
	return vt.NewReversible(
		func(data []byte) rop.Result[T] {
			var v T
			if err := yaml.Unmarshal(data, &v); err != nil {
				return fail[T]("yaml", string(data), err)
			}
			return rop.Success(v)
		},
		func(v T) rop.Result[[]byte] {
			data, err := yaml.Marshal(v)
			if err != nil {
				return fail[[]byte]("yaml", "", err)
			}
			return rop.Success(data)
		},
	)
}
