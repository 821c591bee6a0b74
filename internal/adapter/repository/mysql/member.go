package mysql

import (
	"context"

	memberDomain "sacco-admin/internal/domain/member"

	"gorm.io/gorm"
)

type MemberRepository struct{ db *gorm.DB }

func NewMemberRepository(db *gorm.DB) *MemberRepository { return &MemberRepository{db: db} }

func (r *MemberRepository) Create(ctx context.Context, m *memberDomain.Member) error {
	return translate(r.db, r.db.WithContext(ctx).Create(m).Error, "id_number")
}

// List returns members in storage order.
func (r *MemberRepository) List(ctx context.Context) ([]memberDomain.Member, error) {
	out := []memberDomain.Member{}
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, translate(r.db, err, "")
	}
	return out, nil
}

func (r *MemberRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&memberDomain.Member{}).Count(&n).Error
	return n, translate(r.db, err, "")
}

func (r *MemberRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&memberDomain.Member{}).
		Where("id = ?", id).
		Count(&n).Error
	return n > 0, translate(r.db, err, "")
}

func (r *MemberRepository) TotalBalance(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&memberDomain.Member{}).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&total).Error
	return total, translate(r.db, err, "")
}
