package codec

import (
	"github.com/google/uuid"

	"github.com/ib-77/vtx/pkg/rop"
	"github.com/ib-77/vtx/pkg/vt"
)

// UUID converts between the textual forms accepted by uuid.Parse and
// uuid.UUID. The reverse direction always yields the canonical lower-case form.
func UUID() vt.Reversible[string, uuid.UUID] {
	return vt.NewReversible(
		func(s string) rop.Result[uuid.UUID] {
			id, err := uuid.Parse(s)
			if err != nil {
				return fail[uuid.UUID]("uuid", s, err)
			}
			return rop.Success(id)
		},
		func(id uuid.UUID) rop.Result[string] {
			return rop.Success(id.String())
		},
	)
}
