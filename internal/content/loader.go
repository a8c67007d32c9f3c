package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/hitushen/opscut/internal/logging"
	"github.com/hitushen/opscut/internal/models"
)

const (
	appDir      = "opscut"
	contentFile = "content.yaml"
)

// Bundle 是一次加载得到的完整内容：页面目录加扫描脚本。
type Bundle struct {
	Catalog Catalog
	Script  models.ScanScript
	Source  string
}

// Default 返回未经覆盖的内置内容。
func Default() Bundle {
	return Bundle{Catalog: DefaultCatalog(), Script: DefaultScript(), Source: "builtin"}
}

type stepFile struct {
	Label     string `yaml:"label"`
	DelayMs   int    `yaml:"delayMs"`
	Discovery string `yaml:"discovery"`
}

type scriptFile struct {
	Steps    []stepFile         `yaml:"steps"`
	SettleMs *int               `yaml:"settleMs"`
	Result   *models.ScanResult `yaml:"result"`
}

type bundleFile struct {
	Catalog `yaml:",inline"`
	Scan    *scriptFile `yaml:"scan"`
}

// DefaultPath 返回 XDG 配置目录下的内容覆盖文件路径。
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appDir, contentFile)
}

// Resolve 按显式路径或默认路径加载内容。
// 显式路径不存在时报错；默认路径不存在时回退到内置内容。
func Resolve(explicit string) (Bundle, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path := DefaultPath()
	bundle, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return bundle, err
}

// Load 读取 YAML 覆盖文件，文件中出现的段落整体替换内置值。
func Load(path string) (Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bundle{}, fmt.Errorf("read content %s: %w", path, err)
	}
	bundle, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Bundle{}, fmt.Errorf("load content %s: %w", path, err)
	}
	bundle.Source = path
	log := logging.For("content")
	log.Info().Str("path", path).Int("steps", len(bundle.Script.Steps)).Msg("content overrides loaded")
	return bundle, nil
}

// Decode 解析 YAML 内容覆盖。
func Decode(r io.Reader) (Bundle, error) {
	file := bundleFile{Catalog: DefaultCatalog()}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Bundle{}, fmt.Errorf("decode yaml: %w", err)
	}

	script := DefaultScript()
	if file.Scan != nil {
		var err error
		script, err = file.Scan.apply(script)
		if err != nil {
			return Bundle{}, err
		}
	}
	return Bundle{Catalog: file.Catalog, Script: script, Source: "inline"}, nil
}

func (f *scriptFile) apply(base models.ScanScript) (models.ScanScript, error) {
	out := base
	if f.Steps != nil {
		out.Steps = make([]models.ScanStep, 0, len(f.Steps))
		for _, step := range f.Steps {
			out.Steps = append(out.Steps, models.ScanStep{
				Label:     step.Label,
				Delay:     time.Duration(step.DelayMs) * time.Millisecond,
				Discovery: step.Discovery,
			})
		}
	}
	if f.SettleMs != nil {
		out.Settle = time.Duration(*f.SettleMs) * time.Millisecond
	}
	if f.Result != nil {
		out.Result = f.Result.Clone()
		out.Result.Domain = ""
	}
	if err := ValidateScript(out); err != nil {
		return models.ScanScript{}, err
	}
	return out, nil
}

// ValidateScript 检查脚本是否可以回放。
func ValidateScript(s models.ScanScript) error {
	if len(s.Steps) == 0 {
		return ErrEmptyScript
	}
	for i, step := range s.Steps {
		if step.Label == "" {
			return fmt.Errorf("step %d: %w", i, ErrEmptyStepLabel)
		}
		if step.Delay < 0 {
			return fmt.Errorf("step %d: %w", i, ErrNegativeDelay)
		}
	}
	if s.Settle < 0 {
		return fmt.Errorf("settle: %w", ErrNegativeDelay)
	}
	r := s.Result
	if r.TotalServers < 0 || r.Databases < 0 || r.CurrentCost < 0 || r.OptimizedCost < 0 || r.Savings < 0 || r.SavingsPercent < 0 {
		return ErrNegativeValue
	}
	for i, issue := range r.Issues {
		if issue.Type == "" || issue.Count < 0 || !issue.Severity.Valid() {
			return fmt.Errorf("issue %d: %w", i, ErrInvalidIssue)
		}
	}
	return nil
}
