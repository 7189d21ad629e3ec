package dto

import "preview-tracker/internal/model"

// RegisterPreviewRequest 注册/更新预览环境请求（构建完成后由 CI 调用）
type RegisterPreviewRequest struct {
	BuildID     string              `json:"build_id" binding:"required,max=64"`                // 构建ID，upsert 键
	Repo        string              `json:"repo" binding:"required"`                           // org/repo
	PRNumber    *int                `json:"pr_number" binding:"required"`                      // PR 编号
	CommitSHA   string              `json:"commit_sha" binding:"required,max=64"`              // 提交 SHA
	Branch      string              `json:"branch" binding:"required"`                         // 分支
	Actor       string              `json:"actor" binding:"required"`                          // 触发人
	FrontendURL string              `json:"frontend_url" binding:"required"`                   // 预览地址
	Status      model.PreviewStatus `json:"status" binding:"omitempty,oneof=ready down error"` // 可选，默认 ready
}

// ToModel 转换为模型，状态为空时回落为 ready
func (r *RegisterPreviewRequest) ToModel() *model.Preview {
	p := &model.Preview{
		BuildID:     r.BuildID,
		Repo:        r.Repo,
		CommitSHA:   r.CommitSHA,
		Branch:      r.Branch,
		Actor:       r.Actor,
		FrontendURL: r.FrontendURL,
		Status:      r.Status.OrDefault(),
	}
	if r.PRNumber != nil {
		p.PRNumber = *r.PRNumber
	}
	return p
}

// UpdatePreviewStatusRequest 更新预览环境状态请求
type UpdatePreviewStatusRequest struct {
	BuildID string              `json:"build_id" binding:"required"`
	Status  model.PreviewStatus `json:"status" binding:"required,oneof=ready down error"`
}
