package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrUnknownReference 关联的门店/商品不存在
var ErrUnknownReference = errors.New("referenced record not found")

// translateRefErr 外键冲突统一转成 ErrUnknownReference
func translateRefErr(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrUnknownReference
	}
	return err
}

func cleanName(name string) string {
	return strings.TrimSpace(name)
}
