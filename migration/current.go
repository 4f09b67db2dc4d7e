package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"

	"github.com/traPtitech/traPin/model"
)

// Migrations 全てのデータベースマイグレーション
//
// 新たなマイグレーションを行う場合は、この配列の末尾に必ず追加すること
func Migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		v1(), // pinsテーブルへの (group_id, created_at) の複合インデックスの追加
		v2(), // groupsテーブルにis_defaultを追加し、各ユーザーの最古のグループをデフォルトにする
	}
}

// AllTables 最新のスキーマの全テーブルモデル
//
// 最新のスキーマの全テーブルのモデル構造体を記述すること
// 外部キーの参照先が先に作成されるように並べること
func AllTables() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Category{},
		&model.Emotion{},
		&model.Group{},
		&model.Pin{},
		&model.Follow{},
		&model.SessionRecord{},
	}
}

// SeedCategories 初期カテゴリ
func SeedCategories() []*model.Category {
	return []*model.Category{
		{ID: 1, Name: "음식점"},
		{ID: 2, Name: "카페"},
		{ID: 3, Name: "관광명소"},
		{ID: 4, Name: "쇼핑"},
		{ID: 5, Name: "기타"},
	}
}

// SeedEmotions 初期感情
func SeedEmotions() []*model.Emotion {
	return []*model.Emotion{
		{ID: 1, Name: "행복"},
		{ID: 2, Name: "설렘"},
		{ID: 3, Name: "슬픔"},
		{ID: 4, Name: "화남"},
		{ID: 5, Name: "평온"},
	}
}
