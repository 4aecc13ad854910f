package usecase

import (
	"mutual-availability/internal/preference/repository"
	pkgLog "mutual-availability/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.PreferenceRepository
}

// New creates a new preference UseCase instance.
func New(l pkgLog.Logger, repo repository.PreferenceRepository) *implUseCase {
	return &implUseCase{l: l, repo: repo}
}
