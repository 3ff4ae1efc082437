package types

type ShareRequest struct {
	Share *bool `json:"share" binding:"required"`
}

type ShareResponse struct {
	Hash string `json:"hash,omitempty"`
}

type BrainResponse struct {
	ID        uint64             `json:"id,string"`
	IsPublic  bool               `json:"is_public"`
	ShareHash string             `json:"share_hash,omitempty"`
	Content   []*ContentResponse `json:"content"`
}

// SharedBrainResponse 公开访问时不返回分享令牌
type SharedBrainResponse struct {
	Username string             `json:"username"`
	Content  []*ContentResponse `json:"content"`
}
