package metrics

import (
	"errors"

	"github.com/pogojump/pogojump-api/internal/domain/repository"
)

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrDocumentNotFound)
}
