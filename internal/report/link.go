package report

import (
	"encoding/base64"
	"net/url"
	"strconv"

	perrors "github.com/zhubert/tsplay/internal/errors"
	"github.com/zhubert/tsplay/internal/playground"
)

// DefaultPlaygroundURL is the page shared links point at
const DefaultPlaygroundURL = "https://typescript-eslint.io/play"

// source text travels base64url encoded so fragments stay readable
var textEncoding = base64.RawURLEncoding

// PlaygroundLink returns a link that reopens the playground with s.
// The fragment carries every field needed to reproduce the session.
func PlaygroundLink(base string, s playground.State) string {
	v := url.Values{}
	v.Set(playground.SettingTS, s.TS)
	v.Set(playground.SettingFileType, s.FileType)
	if s.SourceType != "" {
		v.Set(playground.SettingSourceType, s.SourceType)
	}
	v.Set(playground.SettingScroll, strconv.FormatBool(s.Scroll))
	v.Set(playground.SettingShowTokens, strconv.FormatBool(s.ShowTokens))
	if s.ShowAST != "" {
		v.Set(playground.SettingShowAST, s.ShowAST)
	}
	if s.ShowComments {
		v.Set(playground.SettingShowComments, "true")
	}
	v.Set(playground.SettingCode, textEncoding.EncodeToString([]byte(s.Code)))
	v.Set(playground.SettingESLintRC, textEncoding.EncodeToString([]byte(s.ESLintRC)))
	v.Set(playground.SettingTSConfig, textEncoding.EncodeToString([]byte(s.TSConfig)))
	return base + "#" + v.Encode()
}

// ParseLink reads the settings a playground link carries. Keys missing from
// the link stay nil in the partial; unknown keys are ignored. Enum values
// outside their candidate sets are rejected.
func ParseLink(link string) (playground.Partial, error) {
	var p playground.Partial

	u, err := url.Parse(link)
	if err != nil {
		return p, perrors.LinkMalformed("not a URL", err)
	}
	if u.Fragment == "" {
		return p, perrors.LinkMalformed("link has no playground fragment", nil)
	}
	v, err := url.ParseQuery(u.EscapedFragment())
	if err != nil {
		return p, perrors.LinkMalformed("fragment is not a query string", err)
	}

	str := func(key string) *string {
		if !v.Has(key) {
			return nil
		}
		return playground.String(v.Get(key))
	}
	boolean := func(key string) (*bool, error) {
		if !v.Has(key) {
			return nil, nil
		}
		b, err := strconv.ParseBool(v.Get(key))
		if err != nil {
			return nil, perrors.LinkMalformed(key+" is not a boolean", err)
		}
		return &b, nil
	}
	text := func(key string) (*string, error) {
		if !v.Has(key) {
			return nil, nil
		}
		data, err := textEncoding.DecodeString(v.Get(key))
		if err != nil {
			return nil, perrors.LinkMalformed(key+" is not base64url", err)
		}
		return playground.String(string(data)), nil
	}

	p.TS = str(playground.SettingTS)
	p.FileType = str(playground.SettingFileType)
	p.SourceType = str(playground.SettingSourceType)
	p.ShowAST = str(playground.SettingShowAST)
	if p.Scroll, err = boolean(playground.SettingScroll); err != nil {
		return playground.Partial{}, err
	}
	if p.ShowTokens, err = boolean(playground.SettingShowTokens); err != nil {
		return playground.Partial{}, err
	}
	if p.ShowComments, err = boolean(playground.SettingShowComments); err != nil {
		return playground.Partial{}, err
	}
	if p.Code, err = text(playground.SettingCode); err != nil {
		return playground.Partial{}, err
	}
	if p.ESLintRC, err = text(playground.SettingESLintRC); err != nil {
		return playground.Partial{}, err
	}
	if p.TSConfig, err = text(playground.SettingTSConfig); err != nil {
		return playground.Partial{}, err
	}

	if err := playground.ValidatePartial(p); err != nil {
		return playground.Partial{}, err
	}
	return p, nil
}
