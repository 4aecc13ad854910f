package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mutual-availability/internal/model"
	"mutual-availability/internal/preference"
)

// AddCommitment appends a recurring commitment to the subject's preference
// set and persists the whole set back.
func (uc *implUseCase) AddCommitment(ctx context.Context, input preference.AddCommitmentInput) (preference.CommitmentOutput, error) {
	if err := validateCommitmentInput(input.Weekday, input.StartHour, input.StartMinute, input.EndHour, input.EndMinute); err != nil {
		return preference.CommitmentOutput{}, err
	}

	out, err := uc.Get(ctx, input.SubjectID)
	if err != nil {
		return preference.CommitmentOutput{}, err
	}

	commitment := model.RecurringCommitment{
		ID:          uuid.NewString(),
		Weekday:     time.Weekday(input.Weekday),
		StartHour:   input.StartHour,
		StartMinute: input.StartMinute,
		EndHour:     input.EndHour,
		EndMinute:   input.EndMinute,
	}

	prefs := out.Preferences
	prefs.RecurringCommitments = append(prefs.RecurringCommitments, commitment)
	if err := uc.repo.Put(ctx, input.SubjectID, prefs); err != nil {
		uc.l.Errorf(ctx, "preference: add commitment for %q: %v", input.SubjectID, err)
		return preference.CommitmentOutput{}, err
	}
	return preference.CommitmentOutput{Commitment: commitment}, nil
}

// UpdateCommitment rewrites an existing commitment, keyed by ID.
func (uc *implUseCase) UpdateCommitment(ctx context.Context, input preference.UpdateCommitmentInput) (preference.CommitmentOutput, error) {
	if err := validateCommitmentInput(input.Weekday, input.StartHour, input.StartMinute, input.EndHour, input.EndMinute); err != nil {
		return preference.CommitmentOutput{}, err
	}

	out, err := uc.Get(ctx, input.SubjectID)
	if err != nil {
		return preference.CommitmentOutput{}, err
	}

	prefs := out.Preferences
	for i, c := range prefs.RecurringCommitments {
		if c.ID != input.CommitmentID {
			continue
		}
		updated := model.RecurringCommitment{
			ID:          c.ID,
			Weekday:     time.Weekday(input.Weekday),
			StartHour:   input.StartHour,
			StartMinute: input.StartMinute,
			EndHour:     input.EndHour,
			EndMinute:   input.EndMinute,
		}
		prefs.RecurringCommitments[i] = updated
		if err := uc.repo.Put(ctx, input.SubjectID, prefs); err != nil {
			uc.l.Errorf(ctx, "preference: update commitment %q: %v", input.CommitmentID, err)
			return preference.CommitmentOutput{}, err
		}
		return preference.CommitmentOutput{Commitment: updated}, nil
	}
	return preference.CommitmentOutput{}, preference.ErrCommitmentNotFound
}

// DeleteCommitment removes a commitment by ID.
func (uc *implUseCase) DeleteCommitment(ctx context.Context, subjectID, commitmentID string) error {
	out, err := uc.Get(ctx, subjectID)
	if err != nil {
		return err
	}

	prefs := out.Preferences
	for i, c := range prefs.RecurringCommitments {
		if c.ID != commitmentID {
			continue
		}
		prefs.RecurringCommitments = append(prefs.RecurringCommitments[:i], prefs.RecurringCommitments[i+1:]...)
		if err := uc.repo.Put(ctx, subjectID, prefs); err != nil {
			uc.l.Errorf(ctx, "preference: delete commitment %q: %v", commitmentID, err)
			return err
		}
		return nil
	}
	return preference.ErrCommitmentNotFound
}

func validateCommitmentInput(weekday, startHour, startMinute, endHour, endMinute int) error {
	if weekday < 0 || weekday > 6 {
		return preference.ErrInvalidWeekday
	}
	return validateWindow(startHour, startMinute, endHour, endMinute)
}
