package targets

import (
	"net"
	"net/url"
	"strings"
)

// Normalize 对用户输入的域名进行裁剪并提取主机部分。
// 空白输入返回空字符串，调用方据此静默拒绝。
func Normalize(address string) string {
	addr := strings.TrimSpace(address)
	if addr == "" {
		return ""
	}

	// 处理带协议前缀的输入。
	if strings.Contains(addr, "://") {
		if u, err := url.Parse(addr); err == nil && u.Host != "" {
			addr = u.Host
		} else if idx := strings.Index(addr, "://"); idx != -1 {
			addr = addr[idx+3:]
		}
	}

	addr = strings.TrimPrefix(strings.TrimSpace(addr), "//")

	// 去除可能存在的账号密码片段（user:pass@host）。
	if at := strings.LastIndex(addr, "@"); at != -1 {
		addr = addr[at+1:]
	}

	// 去除剩余的路径、查询参数或锚点。
	if cut := strings.IndexAny(addr, "/?#"); cut != -1 {
		addr = addr[:cut]
	}

	addr = strings.TrimSpace(addr)

	// 支持形如 [::1]:443 或 [::1] 的 IPv6 写法。
	if strings.HasPrefix(addr, "[") {
		if end := strings.Index(addr, "]"); end != -1 {
			addr = addr[1:end]
		}
	}

	// 对单冒号 host:port 的写法剥离端口，避免与 IPv6 冲突。
	if strings.Count(addr, ":") == 1 {
		if host, _, err := net.SplitHostPort(addr); err == nil {
			addr = host
		}
	}

	addr = strings.TrimSuffix(addr, ".")
	return strings.ToLower(strings.Trim(addr, "[] "))
}
