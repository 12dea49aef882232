package pkg

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

func GenerateULIDObject() ulid.ULID {
	entropy := ulid.DefaultEntropy()
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
}

func ParseULID(ulidStr string) (ulid.ULID, error) {
	if ulidStr == "" {
		return ulid.ULID{}, errors.New("ULID string cannot be empty")
	}

	parsedULID, err := ulid.Parse(ulidStr)
	if err != nil {
		return ulid.ULID{}, errors.New("invalid ULID format")
	}

	return parsedULID, nil
}

// ParseOptionalULID returns nil for a blank string.
func ParseOptionalULID(ulidStr string) (*ulid.ULID, error) {
	if strings.TrimSpace(ulidStr) == "" {
		return nil, nil
	}
	parsed, err := ParseULID(strings.TrimSpace(ulidStr))
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func IsEmptyULID(id ulid.ULID) bool {
	return id == ulid.ULID{}
}

// ParseUserID parses a principal id issued by the auth service.
func ParseUserID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, errors.New("user id cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.New("invalid user id format")
	}
	return id, nil
}

func ParseInt(s string) (int, error) {
	return strconv.Atoi(s)
}
