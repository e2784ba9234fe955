package services

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/atelierhaus/atelier-backend/internal/platform/dbctx"
)

const codeGenerateAttempts = 5

// generateProjectCode produces a fresh external identifier of the form
// PREFIX-NNNNNN. Uniqueness is checked against all rows including
// soft-deleted ones; a collision after every attempt means the keyspace or
// the RNG is broken and is reported as a hard failure.
func (s *projectService) generateProjectCode(dbc dbctx.Context) (string, error) {
	for attempt := 0; attempt < codeGenerateAttempts; attempt++ {
		n, err := rand.Int(rand.Reader, big.NewInt(1000000))
		if err != nil {
			return "", fmt.Errorf("generate project code: %w", err)
		}
		candidate := fmt.Sprintf("%s-%06d", s.codePrefix, n.Int64())
		exists, err := s.projectRepo.CodeExists(dbc, candidate)
		if err != nil {
			return "", fmt.Errorf("check project code: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		s.log.Warn("Project code collision, retrying", "candidate", candidate, "attempt", attempt+1)
	}
	return "", fmt.Errorf("could not generate a unique project code after %d attempts", codeGenerateAttempts)
}
