package session

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionName = "opscut_visitor"
	keyVisitor  = "visitor_id"
	keyTheme    = "theme"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ErrUnknownTheme 表示不支持的主题名。
var ErrUnknownTheme = errors.New("unknown theme")

// Manager 负责处理访客会话。
type Manager struct {
	cookie sessions.Store
}

// NewManager 使用提供的会话密钥创建 Manager。
func NewManager(sessionKey []byte, secure bool) *Manager {
	cookieStore := sessions.NewCookieStore(sessionKey)
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 30, // 30 天
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{cookie: cookieStore}
}

// VisitorID 返回访客 ID，首次访问时生成并写入 Cookie。
func (m *Manager) VisitorID(w http.ResponseWriter, r *http.Request) (string, error) {
	// 解码失败（如密钥轮换）时 Get 仍返回新会话，直接覆盖即可。
	session, _ := m.cookie.Get(r, sessionName)
	if id, ok := session.Values[keyVisitor].(string); ok && id != "" {
		return id, nil
	}
	id := uuid.NewString()
	session.Values[keyVisitor] = id
	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return id, nil
}

// Peek 只读取访客 ID，不会创建新会话。
func (m *Manager) Peek(r *http.Request) (string, bool) {
	session, err := m.cookie.Get(r, sessionName)
	if err != nil {
		return "", false
	}
	id, ok := session.Values[keyVisitor].(string)
	return id, ok && id != ""
}

// Theme 读取界面主题，默认 light。
func (m *Manager) Theme(r *http.Request) string {
	session, err := m.cookie.Get(r, sessionName)
	if err != nil {
		return ThemeLight
	}
	if theme, ok := session.Values[keyTheme].(string); ok && validTheme(theme) {
		return theme
	}
	return ThemeLight
}

// SetTheme 保存界面主题。
func (m *Manager) SetTheme(w http.ResponseWriter, r *http.Request, theme string) error {
	if !validTheme(theme) {
		return ErrUnknownTheme
	}
	session, _ := m.cookie.Get(r, sessionName)
	session.Values[keyTheme] = theme
	return session.Save(r, w)
}

// ToggleTheme 在 light 与 dark 之间切换并返回新主题。
func (m *Manager) ToggleTheme(w http.ResponseWriter, r *http.Request) (string, error) {
	next := ThemeDark
	if m.Theme(r) == ThemeDark {
		next = ThemeLight
	}
	return next, m.SetTheme(w, r, next)
}

func validTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark
}
