package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cardinal-capital/club-system/internal/core/domain"
	"github.com/cardinal-capital/club-system/internal/core/pagination"
	"github.com/cardinal-capital/club-system/internal/core/ports"
)

// MemberService implements member administration: roster listing, rank-checked
// role changes, and the leadership transfer workflow.
type MemberService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewMemberService(repo ports.UserRepository, log zerolog.Logger) *MemberService {
	return &MemberService{repo: repo, log: log}
}

// List returns a window of the member roster, newest first, with optional
// substring search over name and email.
func (s *MemberService) List(ctx context.Context, q pagination.Query) (*pagination.Result[domain.User], error) {
	users, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(q.Search)
	match := func(u domain.User) bool {
		if search == "" {
			return true
		}
		return strings.Contains(strings.ToLower(u.Name), search) ||
			strings.Contains(strings.ToLower(u.Email), search)
	}
	less := func(a, b domain.User) bool { return a.CreatedAt.After(b.CreatedAt) }
	if q.Ascending {
		less = func(a, b domain.User) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}

	res := pagination.Apply(users, q, match, less)
	return &res, nil
}

// UpdateRole assigns a new role to the target member. The caller may only
// act on a target whose current rank is strictly lower than their own, and
// may only assign a role of strictly lower rank than their own.
func (s *MemberService) UpdateRole(ctx context.Context, caller ports.Session, targetID string, role domain.Role) error {
	if !role.Valid() {
		return domain.ErrInvalidRole
	}
	if caller.Role.Rank() <= role.Rank() {
		return domain.ErrRankTooLow
	}

	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if caller.Role.Rank() <= target.Role.Rank() {
		return domain.ErrRankTooLow
	}

	if err := s.repo.UpdateRole(ctx, targetID, role); err != nil {
		return err
	}

	s.log.Info().
		Str("caller_id", caller.UserID).
		Str("target_id", targetID).
		Str("old_role", string(target.Role)).
		Str("new_role", string(role)).
		Msg("member role updated")
	return nil
}

// TransferLeadership moves the caller's own leadership role (president or
// vice_president) to the target member. The caller is demoted to
// holdings_read first so they keep portfolio access, then the target is
// promoted.
//
// The two writes are sequential, not transactional: a failure between them
// leaves the caller demoted without the target promoted.
// TODO: wrap both writes in a mongo session transaction once the deployment
// runs a replica set (standalone mongod does not support transactions).
func (s *MemberService) TransferLeadership(ctx context.Context, caller ports.Session, targetID string, role domain.Role) error {
	if !caller.Role.Leadership() {
		return domain.ErrNotLeadership
	}
	if role != caller.Role {
		return domain.ErrRoleMismatch
	}

	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if !target.Active {
		return domain.ErrUserInactive
	}
	if target.Role == domain.RoleAdmin || target.Role.Leadership() {
		return domain.ErrTargetIsLeadership
	}

	if err := s.repo.UpdateRole(ctx, caller.UserID, domain.RoleHoldingsRead); err != nil {
		return err
	}
	if err := s.repo.UpdateRole(ctx, targetID, role); err != nil {
		s.log.Error().Err(err).
			Str("caller_id", caller.UserID).
			Str("target_id", targetID).
			Str("role", string(role)).
			Msg("leadership transfer failed after caller demotion; role is now unheld")
		return err
	}

	s.log.Info().
		Str("caller_id", caller.UserID).
		Str("target_id", targetID).
		Str("role", string(role)).
		Msg("leadership role transferred")
	return nil
}

// Deactivate disables the target account. Leadership transfers to an
// inactive account are rejected, so deactivation is rank-checked the same
// way role changes are.
func (s *MemberService) Deactivate(ctx context.Context, caller ports.Session, targetID string) error {
	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return err
	}
	if caller.Role.Rank() <= target.Role.Rank() {
		return domain.ErrRankTooLow
	}

	if err := s.repo.SetActive(ctx, targetID, false); err != nil {
		return err
	}

	s.log.Info().
		Str("caller_id", caller.UserID).
		Str("target_id", targetID).
		Msg("member deactivated")
	return nil
}
