package feed

import (
	"context"
	"strconv"

	"github.com/devmatch/devmatch-backend/internal/app"
	svcErr "github.com/devmatch/devmatch-backend/internal/errors"
	"github.com/devmatch/devmatch-backend/internal/matchmaking"
	pb "github.com/devmatch/devmatch-backend/internal/proto/feed"
	"github.com/devmatch/devmatch-backend/internal/repository"
)

// defaultMatchesPageSize bounds one page of the matches listing.
const defaultMatchesPageSize = 20

// Service implements the Feed gRPC API: the swipe feed, swipe recording,
// and match listings on top of the repository and cache layers.
type Service struct {
	appCtx       *app.AppContext
	profileRepo  *repository.ProfileRepository
	interactions *repository.InteractionRepository
	matchmaker   *matchmaking.Service

	pb.UnimplementedFeedServiceServer
}

// NewFeedService creates the Feed service with dependencies from AppContext.
func NewFeedService(appCtx *app.AppContext) *Service {
	profileRepo := repository.NewProfileRepository(appCtx.DB)
	interactions := repository.NewInteractionRepository(appCtx.DB)
	return &Service{
		appCtx:       appCtx,
		profileRepo:  profileRepo,
		interactions: interactions,
		matchmaker:   matchmaking.NewService(profileRepo, interactions, appCtx.Logger),
	}
}

// GetFeed returns one page of candidate profiles for the requester.
//
// Behavior:
//   - Reads the requester's goal from their stored profile.
//   - Delegates tier sweeps, exclusion, and shuffling to the matchmaker.
//   - Maps normalized developers onto the wire shape.
func (s *Service) GetFeed(ctx context.Context, req *pb.GetFeedRequest) (*pb.GetFeedResponse, error) {
	s.appCtx.Logger.Debug("GetFeed called", "requester", req.GetRequesterUserId(), "limit", req.GetLimit())

	requesterID, err := strconv.ParseUint(req.GetRequesterUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("requester_user_id must be a valid uint64")
	}

	requester, err := s.profileRepo.GetByUserID(ctx, requesterID)
	if err != nil {
		s.appCtx.Logger.Error("loading requester profile failed", "requester", requesterID, "err", err)
		return nil, svcErr.Map(err)
	}

	filters := matchmaking.Filters{
		Location: req.GetLocation(),
		Skills:   req.GetSkills(),
	}
	if req.ExperienceMin != nil {
		minYears := int(req.GetExperienceMin())
		filters.ExperienceMin = &minYears
	}
	if req.ExperienceMax != nil {
		maxYears := int(req.GetExperienceMax())
		filters.ExperienceMax = &maxYears
	}
	if req.LookingForWork != nil {
		looking := req.GetLookingForWork()
		filters.LookingForWork = &looking
	}

	result, err := s.matchmaker.GetMatchedProfiles(ctx, requesterID, matchmaking.Goal(requester.Goal), filters, int(req.GetLimit()))
	if err != nil {
		s.appCtx.Logger.Error("GetMatchedProfiles failed", "requester", requesterID, "err", err)
		return nil, svcErr.Map(err)
	}

	resp := &pb.GetFeedResponse{
		HasMore:    result.HasMore,
		TotalCount: uint32(result.TotalCount),
	}
	for _, d := range result.Profiles {
		resp.Profiles = append(resp.Profiles, toProto(d))
	}

	s.appCtx.Logger.Debug("GetFeed result", "requester", requesterID, "count", len(resp.Profiles), "has_more", resp.HasMore)

	return resp, nil
}

// RecordSwipe persists a like or pass made by the actor on the target.
//
// Behavior:
//   - Validates actor and target ids (must be different).
//   - Upserts the user_action row; a mutual like creates the match.
//   - On a new match, bumps both users' cached match counts.
func (s *Service) RecordSwipe(ctx context.Context, req *pb.RecordSwipeRequest) (*pb.RecordSwipeResponse, error) {
	s.appCtx.Logger.Debug(
		"RecordSwipe called",
		"actor", req.GetActorUserId(),
		"target", req.GetTargetUserId(),
		"liked", req.GetLiked(),
	)

	actorID, err := strconv.ParseUint(req.GetActorUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("actor_user_id must be a valid uint64")
	}
	targetID, err := strconv.ParseUint(req.GetTargetUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("target_user_id must be a valid uint64")
	}

	if actorID == targetID {
		return nil, svcErr.InvalidArgument("cannot swipe on yourself")
	}

	matched, err := s.interactions.RecordSwipe(ctx, actorID, targetID, req.GetLiked())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	if matched {
		// counter cache is best-effort; the DB stays the source of truth
		_ = s.appCtx.RedisCache.IncrMatchCount(ctx, actorID)
		_ = s.appCtx.RedisCache.IncrMatchCount(ctx, targetID)
	}

	return &pb.RecordSwipeResponse{Matched: matched}, nil
}

// ListMatches returns one page of the user's matches, newest first.
func (s *Service) ListMatches(ctx context.Context, req *pb.ListMatchesRequest) (*pb.ListMatchesResponse, error) {
	userID, err := strconv.ParseUint(req.GetUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}

	matches, nextToken, err := s.interactions.ListMatches(ctx, userID, req.PaginationToken, defaultMatchesPageSize)
	if err != nil {
		s.appCtx.Logger.Error("ListMatches failed", "user", userID, "err", err)
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListMatchesResponse{}
	for _, m := range matches {
		counterpart := m.UserID1
		if counterpart == userID {
			counterpart = m.UserID2
		}
		resp.Matches = append(resp.Matches, &pb.ListMatchesResponse_Entry{
			MatchedUserId: strconv.FormatUint(counterpart, 10),
			UnixTimestamp: uint64(m.CreatedAt.UnixMilli()),
		})
	}
	if nextToken != nil {
		resp.NextPaginationToken = nextToken
	}

	return resp, nil
}

// CountMatches returns how many matches the user has.
// Cache-first strategy:
//  1. Attempts to read from Redis (matches:count:userID).
//  2. On cache miss, falls back to the DB.
//  3. On DB fetch, updates Redis with the default TTL.
func (s *Service) CountMatches(ctx context.Context, req *pb.CountMatchesRequest) (*pb.CountMatchesResponse, error) {
	userID, err := strconv.ParseUint(req.GetUserId(), 10, 64)
	if err != nil {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}

	if cached, ok, err := s.appCtx.RedisCache.GetMatchCount(ctx, userID); err == nil && ok {
		return &pb.CountMatchesResponse{Count: uint64(cached)}, nil
	}

	count, err := s.interactions.CountMatches(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	_ = s.appCtx.RedisCache.UpdateMatchCount(ctx, userID, count)

	return &pb.CountMatchesResponse{Count: uint64(count)}, nil
}

// toProto maps a normalized developer onto the wire shape.
func toProto(d matchmaking.Developer) *pb.Developer {
	out := &pb.Developer{
		Id:          strconv.FormatUint(d.ID, 10),
		Name:        d.Name,
		Bio:         d.Bio,
		Role:        d.Role,
		AvatarUrl:   d.AvatarURL,
		Location:    d.Location,
		Company:     d.Company,
		Position:    d.Position,
		Education:   d.Education,
		GithubUrl:   d.GithubURL,
		LinkedinUrl: d.LinkedinURL,
		WebsiteUrl:  d.WebsiteURL,
		Looking:     d.Looking,
	}
	if d.Experience != nil {
		years := int32(*d.Experience)
		out.ExperienceYears = &years
	}
	for _, s := range d.Skills {
		out.Skills = append(out.Skills, &pb.Skill{Name: s.Name, Level: string(s.Level)})
	}
	return out
}
