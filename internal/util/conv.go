package util

import (
	"strconv"
)

// ParseUint 解析十进制 id 参数，非数字返回错误交给边界层报 400
func ParseUint(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
