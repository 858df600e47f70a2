package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/engine"
	"resume-parser-go/internal/extractor"
	"resume-parser-go/internal/logger"
)

// 离线解析工具：读取一个简历文件，输出结构化JSON
// 不依赖任何存储后端，适合本地调试关键词表和日期表配置
func main() {
	var (
		inputPath  string
		outputPath string
		configPath string
		pretty     bool
	)
	pflag.StringVarP(&inputPath, "input", "i", "", "输入文件路径（.pdf 或 .txt）")
	pflag.StringVarP(&outputPath, "output", "o", "", "输出文件路径，缺省写到标准输出")
	pflag.StringVarP(&configPath, "config", "c", "", "配置文件路径")
	pflag.BoolVarP(&pretty, "pretty", "p", false, "输出带缩进的JSON")
	pflag.Parse()

	if inputPath == "" {
		fmt.Fprintln(os.Stderr, "必须指定输入文件，用法: parsecli -i resume.pdf [-o out.json] [-p]")
		pflag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}
	// CLI的日志只进标准错误，避免污染JSON输出
	cfg.Logger.Format = "pretty"
	logger.Init(cfg.Logger)

	ctx := context.Background()

	eng, err := engine.New(cfg.Engine)
	if err != nil {
		logger.Fatal().Err(err).Msg("初始化解析引擎失败")
	}

	pages, err := extractPages(ctx, cfg, inputPath)
	if err != nil {
		logger.Fatal().Err(err).Str("input", inputPath).Msg("提取文本失败")
	}

	record, err := eng.ParsePages(ctx, pages)
	if err != nil {
		logger.Fatal().Err(err).Str("input", inputPath).Msg("解析失败")
	}

	var data []byte
	if pretty {
		data, err = record.ToPrettyJSON()
	} else {
		data, err = record.ToJSON()
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("序列化结果失败")
	}

	if outputPath == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(outputPath, append(data, '\n'), 0644); err != nil {
		logger.Fatal().Err(err).Str("output", outputPath).Msg("写输出文件失败")
	}
	logger.Info().Str("output", outputPath).Msg("解析结果已写出")
}

// extractPages 按扩展名选择提取器
func extractPages(ctx context.Context, cfg *config.Config, inputPath string) ([]string, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("打开输入文件失败: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(inputPath)) {
	case ".pdf":
		pdfExtractor, err := extractor.NewEinoPDFExtractor(ctx,
			extractor.WithTimeout(time.Duration(cfg.ExtractTimeoutSeconds)*time.Second),
		)
		if err != nil {
			return nil, err
		}
		return pdfExtractor.ExtractPages(ctx, file, inputPath)
	case ".txt", "":
		return extractor.NewPlainTextExtractor().ExtractPages(ctx, file, inputPath)
	default:
		return nil, fmt.Errorf("不支持的文件类型: %s", filepath.Ext(inputPath))
	}
}
