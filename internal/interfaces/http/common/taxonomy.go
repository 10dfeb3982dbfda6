package common

import (
	"fmt"
	"strings"
)

// regions は割り当て可能な地域ラベルの閉集合。
var regions = []string{"North", "South", "East", "West", "HQ"}

// CanonicalRegion は地域ラベルを大文字小文字を無視して正規表記へ丸める。
// 未知のラベルは空文字を返す。
func CanonicalRegion(value string) string {
	value = strings.TrimSpace(value)
	for _, region := range regions {
		if strings.EqualFold(region, value) {
			return region
		}
	}
	return ""
}

// NormalizeRegionList は地域ラベル列を正規化し、未知のラベルをエラーにする。
func NormalizeRegionList(values []string) ([]string, error) {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{})
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			continue
		}
		region := CanonicalRegion(value)
		if region == "" {
			return nil, fmt.Errorf("未知の地域です: %s", value)
		}
		if _, ok := seen[region]; ok {
			continue
		}
		seen[region] = struct{}{}
		result = append(result, region)
	}
	return result, nil
}

// Regions returns the closed set of assignable region labels.
func Regions() []string {
	return append([]string(nil), regions...)
}
