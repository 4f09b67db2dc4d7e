//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE -aux_files=github.com/traPtitech/traPin/repository=user.go,github.com/traPtitech/traPin/repository=group.go,github.com/traPtitech/traPin/repository=pin.go,github.com/traPtitech/traPin/repository=follow.go,github.com/traPtitech/traPin/repository=category.go,github.com/traPtitech/traPin/repository=emotion.go

package repository

// Repository データリポジトリ
type Repository interface {
	UserRepository
	GroupRepository
	PinRepository
	FollowRepository
	CategoryRepository
	EmotionRepository
}
