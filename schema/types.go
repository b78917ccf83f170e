// Package schema — column types and synthetic value generation.

package schema

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// Sentinel errors for schema operations.
var (
	// ErrCycleDetected indicates circular foreign-key references between
	// tables, for which no creation order exists.
	ErrCycleDetected = errors.New("schema: circular foreign-key references")

	// ErrUnknownTable indicates a foreign key referencing a table that is
	// not part of the schema.
	ErrUnknownTable = errors.New("schema: unknown table")
)

// TypeKind enumerates the supported column types.
type TypeKind uint8

const (
	TypeInteger TypeKind = iota
	TypeFloat
	TypeVarchar
	TypeText
	TypeBoolean
	TypeDate
	TypeTimestamp
	TypeUUID
)

// Type is a column type; Size carries the length for Varchar.
type Type struct {
	Kind TypeKind
	Size int
}

// Integer returns the INTEGER column type.
func Integer() Type { return Type{Kind: TypeInteger} }

// Float returns the FLOAT column type.
func Float() Type { return Type{Kind: TypeFloat} }

// Varchar returns the VARCHAR(size) column type.
func Varchar(size int) Type { return Type{Kind: TypeVarchar, Size: size} }

// Text returns the TEXT column type.
func Text() Type { return Type{Kind: TypeText} }

// Boolean returns the BOOLEAN column type.
func Boolean() Type { return Type{Kind: TypeBoolean} }

// Date returns the DATE column type.
func Date() Type { return Type{Kind: TypeDate} }

// Timestamp returns the TIMESTAMP column type.
func Timestamp() Type { return Type{Kind: TypeTimestamp} }

// UUID returns the UUID column type.
func UUID() Type { return Type{Kind: TypeUUID} }

// maxRandomVarcharLen caps synthetic VARCHAR values regardless of the
// declared column size.
const maxRandomVarcharLen = 20

// loremWords feeds synthetic TEXT values.
var loremWords = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing",
}

// Random renders a synthetic literal of this type, quoted where SQL requires
// it. Values are drawn from rng, so a seeded source yields reproducible rows.
func (t Type) Random(rng *rand.Rand) string {
	switch t.Kind {
	case TypeInteger:
		return fmt.Sprintf("%d", 1+rng.Intn(999))
	case TypeFloat:
		return fmt.Sprintf("%.2f", rng.Float64()*100)
	case TypeVarchar:
		return "'" + randomWord(rng, t.Size) + "'"
	case TypeText:
		count := 3 + rng.Intn(7)
		words := make([]string, count)
		for i := range words {
			words[i] = loremWords[rng.Intn(len(loremWords))]
		}

		return "'" + strings.Join(words, " ") + "'"
	case TypeBoolean:
		if rng.Intn(2) == 0 {
			return "FALSE"
		}

		return "TRUE"
	case TypeDate:
		return "'" + randomDate(rng) + "'"
	case TypeTimestamp:
		return fmt.Sprintf("'%s %02d:%02d:%02d'",
			randomDate(rng), rng.Intn(24), rng.Intn(60), rng.Intn(60))
	case TypeUUID:
		return "'" + randomUUID(rng) + "'"
	default:
		return "NULL"
	}
}

// randomWord builds a lowercase ASCII word of length 1..min(size,20)-1
// (at least one character).
func randomWord(rng *rand.Rand, size int) string {
	limit := size
	if limit > maxRandomVarcharLen {
		limit = maxRandomVarcharLen
	}
	length := 1
	if limit > 2 {
		length = 1 + rng.Intn(limit-1)
	}

	b := make([]byte, length)
	for i := range b {
		b[i] = byte('a' + rng.Intn(26))
	}

	return string(b)
}

// randomDate renders YYYY-MM-DD with day capped at 28 to sidestep month
// length differences.
func randomDate(rng *rand.Rand) string {
	return fmt.Sprintf("%d-%02d-%02d",
		2000+rng.Intn(23), 1+rng.Intn(12), 1+rng.Intn(28))
}

// randomUUID draws a version-4 UUID from rng rather than crypto/rand, so
// seeded runs stay reproducible.
func randomUUID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		// rand.Rand never fails to read; keep the path total anyway.
		return uuid.Nil.String()
	}

	return id.String()
}
