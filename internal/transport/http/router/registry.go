package router

import (
	"sort"

	httpez "bookmark-api/internal/transport/http/ez"
)

// APIModule 各 handler 自己挂路由
type APIModule interface{ MountAPI(httpez.EZ) }

// 可选：实现该接口控制挂载顺序（数值越小越先挂），默认 100
type prioritizer interface{ Priority() int }

// MountAll 按优先级把模块挂到同一个 EZ 分组
func MountAll(e httpez.EZ, mods ...APIModule) {
	mods = append([]APIModule(nil), mods...)
	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.MountAPI(e)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
