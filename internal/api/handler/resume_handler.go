package handler

import (
	"context"
	"errors"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/processor"
)

// ResumeHandler 简历接口处理器，把HTTP请求翻译成服务调用
type ResumeHandler struct {
	cfg     *config.Config
	service *processor.ResumeService
}

// NewResumeHandler 创建简历接口处理器
func NewResumeHandler(cfg *config.Config, service *processor.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		cfg:     cfg,
		service: service,
	}
}

// ParseResponse 解析接口响应
type ParseResponse struct {
	SubmissionUUID string      `json:"submission_uuid"`
	Duplicate      bool        `json:"duplicate"`
	Record         interface{} `json:"record"`
}

// HandleParse 处理简历上传并同步返回解析结果
// POST /api/v1/resumes/parse，multipart表单，文件字段名为 file
func (h *ResumeHandler) HandleParse(c context.Context, ctx *app.RequestContext) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "文件未找到"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败"})
		return
	}
	defer file.Close()

	result, err := h.service.ProcessUpload(c, file, fileHeader.Size, fileHeader.Filename)
	if err != nil {
		status := consts.StatusInternalServerError
		switch {
		case errors.Is(err, processor.ErrUnsupportedFile):
			status = consts.StatusUnsupportedMediaType
		case errors.Is(err, processor.ErrParseFailed), errors.Is(err, processor.ErrExtractTextFailed):
			// 不可解码的输入是客户端问题，不是服务端故障
			status = consts.StatusUnprocessableEntity
		}
		logger.Ctx(c).Error().Err(err).Str("file", fileHeader.Filename).Msg("处理简历上传失败")
		ctx.JSON(status, utils.H{"error": err.Error()})
		return
	}

	ctx.JSON(consts.StatusOK, ParseResponse{
		SubmissionUUID: result.SubmissionUUID,
		Duplicate:      result.Duplicate,
		Record:         result.Record,
	})
}

// HandleGetRecord 查询已解析的简历结构
// GET /api/v1/resumes/:uuid
func (h *ResumeHandler) HandleGetRecord(c context.Context, ctx *app.RequestContext) {
	submissionUUID := ctx.Param("uuid")
	if submissionUUID == "" {
		ctx.JSON(consts.StatusBadRequest, utils.H{"error": "缺少uuid参数"})
		return
	}

	record, err := h.service.GetRecord(c, submissionUUID)
	if errors.Is(err, processor.ErrRecordNotFound) {
		ctx.JSON(consts.StatusNotFound, utils.H{"error": "解析结果不存在"})
		return
	}
	if err != nil {
		logger.Ctx(c).Error().Err(err).Str("submission_uuid", submissionUUID).Msg("查询解析结果失败")
		ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
		return
	}

	ctx.JSON(consts.StatusOK, record)
}
