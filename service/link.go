package service

import (
	"brainvault/models"
	"net/url"
	"regexp"
	"strings"
)

var youtubeIDRe = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// NormalizeLink 按内容类型规范化链接，无法识别时原样返回
// youtube 统一为 embed 地址，x.com 统一为 twitter.com
func NormalizeLink(link, contentType string) string {
	if link == "" {
		return link
	}

	switch contentType {
	case models.ContentTypeYoutube:
		if m := youtubeIDRe.FindStringSubmatch(link); len(m) == 2 {
			return "https://www.youtube.com/embed/" + m[1]
		}
	case models.ContentTypeTwitter:
		return twitterLink(link)
	}
	return link
}

// twitterLink 仅改写主机为 x.com 或 www.x.com 的链接，缺少 scheme 时补 https
func twitterLink(link string) string {
	raw := link
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return link
	}

	switch strings.ToLower(u.Hostname()) {
	case "x.com", "www.x.com":
		u.Host = "twitter.com"
		if port := u.Port(); port != "" {
			u.Host += ":" + port
		}
		return u.String()
	}
	return link
}
