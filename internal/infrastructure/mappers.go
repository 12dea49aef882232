package infrastructure

import (
	"github.com/dmogiovanni/teugestor-backend/internal/pkg"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

func parseIDs(ulids []string) ([]ulid.ULID, error) {
	out := make([]ulid.ULID, 0, len(ulids))
	for _, s := range ulids {
		id, err := pkg.ParseULID(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func idStrings(ids []ulid.ULID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func parseOwner(s string) (uuid.UUID, error) {
	return pkg.ParseUserID(s)
}
