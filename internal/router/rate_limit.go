package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/minishop/internal/http/response"
	"github.com/minishop/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	rateLimitUnavailableMsg = "rate limiter unavailable"
	// 限流 key 只需要读取登录请求体中的短字段
	maxRateLimitBodyBytes = 64 << 10
)

// RateLimitKeyFunc 生成限流 key 的函数
type RateLimitKeyFunc func(*gin.Context) string

// RateLimitRule 固定窗口限流规则
type RateLimitRule struct {
	Prefix        string
	WindowSeconds int
	MaxRequests   int
	Message       string
}

func (r RateLimitRule) enabled() bool {
	return r.WindowSeconds > 0 && r.MaxRequests > 0
}

// 首次计数时设置过期时间，返回 {当前计数, 剩余 TTL}
var rateLimitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("TTL", KEYS[1])
return {current, ttl}
`)

// RateLimitMiddleware Redis 频率限制中间件，client 为 nil 时不限流
func RateLimitMiddleware(client *redis.Client, rule RateLimitRule, keyFunc RateLimitKeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || !rule.enabled() {
			c.Next()
			return
		}

		key := rateLimitKey(c, rule.Prefix, keyFunc)
		result, err := rateLimitScript.Run(c.Request.Context(), client, []string{key}, rule.WindowSeconds).Result()
		if err != nil {
			logger.Errorw("rate_limit_script_failed", "key", key, "error", err)
			response.Error(c, response.CodeInternal, rateLimitUnavailableMsg)
			c.Abort()
			return
		}
		count, ttlSeconds, ok := parseRateLimitResult(result)
		if !ok {
			logger.Errorw("rate_limit_result_invalid", "key", key, "result", result)
			response.Error(c, response.CodeInternal, rateLimitUnavailableMsg)
			c.Abort()
			return
		}

		if count > int64(rule.MaxRequests) {
			wait := int(ttlSeconds)
			if wait < 1 {
				wait = rule.WindowSeconds
			}
			msg := strings.TrimSpace(rule.Message)
			if msg == "" {
				msg = "too many requests"
			}
			c.Header("Retry-After", strconv.Itoa(wait))
			response.Error(c, response.CodeTooManyRequests, fmt.Sprintf("%s, retry after %d seconds", msg, wait))
			c.Abort()
			return
		}

		c.Next()
	}
}

func rateLimitKey(c *gin.Context, prefix string, keyFunc RateLimitKeyFunc) string {
	key := ""
	if keyFunc != nil {
		key = strings.TrimSpace(keyFunc(c))
	}
	if key == "" {
		key = c.ClientIP()
	}
	if prefix == "" {
		return key
	}
	return prefix + ":" + key
}

func parseRateLimitResult(result interface{}) (count int64, ttl int64, ok bool) {
	values, isSlice := result.([]interface{})
	if !isSlice || len(values) < 2 {
		return 0, 0, false
	}
	count, ok = toInt64(values[0])
	if !ok {
		return 0, 0, false
	}
	ttl, _ = toInt64(values[1])
	return count, ttl, true
}

// KeyByIP 使用 IP 作为限流 key
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByIPAndJSONField 使用 JSON 字段 + IP 作为限流 key，字段不区分大小写
func KeyByIPAndJSONField(field string) RateLimitKeyFunc {
	return func(c *gin.Context) string {
		value := strings.ToLower(readJSONField(c, field))
		if value == "" {
			return c.ClientIP()
		}
		return value + "|" + c.ClientIP()
	}
}

// readJSONField 读取请求体中的字符串字段，并还原请求体供后续绑定
func readJSONField(c *gin.Context, field string) string {
	if c == nil || c.Request == nil || c.Request.Body == nil {
		return ""
	}
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxRateLimitBodyBytes))
	c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(body), c.Request.Body))
	if err != nil || len(body) == 0 {
		return ""
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	var text string
	if err := json.Unmarshal(payload[field], &text); err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}

// toInt64 转换 Redis 脚本返回的数值
func toInt64(value interface{}) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}
