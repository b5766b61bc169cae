// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

func (m model) View() string {
	var page string
	switch m.screen {
	case screenDetail:
		page = m.viewDetail()
	case screenSearch:
		page = m.viewSearch()
	case screenUpload:
		page = m.viewUpload()
	case screenLogin:
		page = m.viewLogin()
	case screenAbout:
		page = renderBuildInfoWindow(m.buildInfo)
	default:
		page = m.viewList()
	}
	return appStyle.Render(page)
}
