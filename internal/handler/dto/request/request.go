package request

import (
	"gearshare/internal/usecase/commands"
)

type CreateItemRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

func (r CreateItemRequestRequest) ToCommand() commands.CreateRequestRequest {
	return commands.CreateRequestRequest{
		Description: r.Description,
	}
}
