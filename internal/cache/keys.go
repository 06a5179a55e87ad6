package cache

import "time"

// 商品列表缓存
const (
	ProductListKey = "catalog:products"
	ProductListTTL = 60 * time.Second
)

// LoginRateLimitPrefix 登录限流 key 前缀
const LoginRateLimitPrefix = "ratelimit:login"
