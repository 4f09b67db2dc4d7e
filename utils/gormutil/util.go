package gormutil

import "gorm.io/gorm"

// RecordExists 指定した条件のレコードが1行以上存在するかどうか
func RecordExists(db *gorm.DB, where interface{}, tableName ...string) (exists bool, err error) {
	if len(tableName) > 0 {
		db = db.Table(tableName[0])
	} else {
		db = db.Model(where)
	}
	return Exists(db.Where(where))
}

// Exists 行数が1行以上かどうかを返します
func Exists(db *gorm.DB) (exists bool, err error) {
	var n int64
	err = db.Limit(1).Count(&n).Error
	return n > 0, err
}
