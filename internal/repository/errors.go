package repository

import "errors"

// ErrDuplicate 唯一约束冲突
var ErrDuplicate = errors.New("duplicate record")
