package hash

import (
	"crypto/sha256"
	"sync"

	cryptointf "github.com/weisyn/contract-abi/pkg/interfaces/infrastructure/crypto"
	"golang.org/x/crypto/sha3"
)

// 确保HashService实现了cryptointf.HashManager接口
var _ cryptointf.HashManager = (*HashService)(nil)

// HashCache 简单的哈希结果缓存
type HashCache struct {
	cache map[string][]byte
	mu    sync.RWMutex
}

// NewHashCache 创建新的哈希缓存
func NewHashCache() *HashCache {
	return &HashCache{
		cache: make(map[string][]byte),
	}
}

// Get 从缓存获取哈希值
func (c *HashCache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, ok := c.cache[key]
	if !ok {
		return nil, false
	}

	// 返回副本而非引用
	result := make([]byte, len(value))
	copy(result, value)
	return result, true
}

// Set 设置缓存中的哈希值
func (c *HashCache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)
	c.cache[key] = valueCopy
}

// HashService 提供哈希计算功能
//
// Keccak-256 是方法选择器派生使用的摘要算法；SHA-256 供缓存键等内部用途。
// 相同签名文本会被反复求摘要（每次构造方法对象都会派生选择器），
// 因此对Keccak结果做内存缓存。
type HashService struct {
	keccak256Cache *HashCache
}

// NewHashService 创建新的哈希服务
func NewHashService() *HashService {
	return &HashService{
		keccak256Cache: NewHashCache(),
	}
}

// cacheKey 根据数据生成缓存键
// 使用SHA256哈希作为缓存键，确保任意长度输入下键的唯一性
func cacheKey(data []byte) string {
	keyHash := sha256.Sum256(data)
	return string(keyHash[:])
}

// SHA256 计算SHA-256哈希
//
// 参数:
//   - data: 要计算哈希的数据
//
// 返回:
//   - []byte: 32字节的SHA-256哈希结果
func (s *HashService) SHA256(data []byte) []byte {
	hash := sha256.Sum256(data)
	return hash[:]
}

// Keccak256 计算Keccak-256哈希
//
// 参数:
//   - data: 要计算哈希的数据
//
// 返回:
//   - []byte: 32字节的Keccak-256哈希结果
func (s *HashService) Keccak256(data []byte) []byte {
	key := cacheKey(data)
	if cached, ok := s.keccak256Cache.Get(key); ok {
		return cached
	}

	hasher := sha3.NewLegacyKeccak256()
	hasher.Write(data)
	result := hasher.Sum(nil)

	s.keccak256Cache.Set(key, result)
	return result
}
