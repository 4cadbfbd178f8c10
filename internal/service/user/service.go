package user

import (
	"context"
	"time"

	"github.com/officemate-hq/officemate-backend-go/internal/domain/user"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) ListMembers(ctx context.Context) ([]user.MemberResponse, error) {
	members, err := s.userRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]user.MemberResponse, 0, len(members))
	for _, m := range members {
		result = append(result, mapToMemberResponse(m))
	}
	return result, nil
}

func (s *UserServiceImpl) GetMember(ctx context.Context, id string) (user.MemberResponse, error) {
	member, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.MemberResponse{}, err
	}
	return mapToMemberResponse(member), nil
}

func (s *UserServiceImpl) UpdateMember(ctx context.Context, req user.UpdateUserRequest) (user.MemberResponse, error) {
	if err := req.Validate(); err != nil {
		return user.MemberResponse{}, err
	}

	member, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.MemberResponse{}, err
	}

	if req.FullName != nil {
		member.FullName = *req.FullName
	}
	if req.Department != nil {
		member.Department = req.Department
	}
	if req.PayGrade != nil {
		member.PayGrade = user.PayGrade(*req.PayGrade)
	}
	if req.Role != nil {
		member.Role = user.Role(*req.Role)
	}
	if req.InsuranceFlag != nil {
		member.InsuranceFlag = *req.InsuranceFlag
	}
	if req.TaxFlag != nil {
		member.TaxFlag = *req.TaxFlag
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}

	updated, err := s.userRepo.Update(ctx, member)
	if err != nil {
		return user.MemberResponse{}, err
	}
	return mapToMemberResponse(updated), nil
}

func mapToMemberResponse(u user.User) user.MemberResponse {
	return user.MemberResponse{
		ID:            u.ID,
		Email:         u.Email,
		FullName:      u.FullName,
		Department:    u.Department,
		PayGrade:      string(u.PayGrade),
		Role:          string(u.Role),
		InsuranceFlag: u.InsuranceFlag,
		TaxFlag:       u.TaxFlag,
		IsActive:      u.IsActive,
		CreatedAt:     u.CreatedAt.Format(time.RFC3339),
	}
}
