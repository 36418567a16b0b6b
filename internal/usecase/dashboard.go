package usecase

import (
	"context"

	"github.com/xavierca1/agency-site/internal/entity"
)

type Dashboard struct {
	Submissions map[string]int         `json:"submissions"`
	Subscribers entity.SubscriberStats `json:"subscribers"`
	Services    int                    `json:"services"`
	TeamMembers int                    `json:"team_members"`
}

type DashboardUseCase struct {
	Submissions SubmissionRepositoryInterface
	Subscribers SubscriberRepositoryInterface
	Services    ServiceRepositoryInterface
	Team        TeamRepositoryInterface
}

func NewDashboardUseCase(submissions SubmissionRepositoryInterface, subscribers SubscriberRepositoryInterface, services ServiceRepositoryInterface, team TeamRepositoryInterface) *DashboardUseCase {
	return &DashboardUseCase{
		Submissions: submissions,
		Subscribers: subscribers,
		Services:    services,
		Team:        team,
	}
}

func (uc *DashboardUseCase) Execute(ctx context.Context) (*Dashboard, error) {
	counts, err := uc.Submissions.CountByStatus(ctx)
	if err != nil {
		return nil, databaseError("failed to count submissions", err)
	}
	stats, err := uc.Subscribers.Stats(ctx)
	if err != nil {
		return nil, databaseError("failed to compute subscriber stats", err)
	}
	services, err := uc.Services.Count(ctx)
	if err != nil {
		return nil, databaseError("failed to count services", err)
	}
	team, err := uc.Team.Count(ctx)
	if err != nil {
		return nil, databaseError("failed to count team members", err)
	}

	return &Dashboard{
		Submissions: counts,
		Subscribers: stats,
		Services:    services,
		TeamMembers: team,
	}, nil
}
