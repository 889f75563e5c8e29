package advisor

import (
	"fmt"
	"sort"

	"hatake/internal/models"
)

// Copy is the localized text of one advisory.
type Copy struct {
	Title   string
	Message string
}

// Catalog holds every user-facing string the engine can emit for one locale.
type Catalog struct {
	Locale         string
	advisories     map[copyKey]Copy
	riskLabels     map[models.RiskLevel]string
	severityLabels map[models.Severity]string
	sectors        map[CompassSector]string
	dayTags        map[tagKind]string
	NoAdvisories   string
	FallbackNotice string
}

// RiskLabel returns the label shown next to a risk score.
func (c *Catalog) RiskLabel(level models.RiskLevel) string {
	return c.riskLabels[level]
}

// SeverityLabel returns the badge text for an advisory severity.
func (c *Catalog) SeverityLabel(s models.Severity) string {
	return c.severityLabels[s]
}

// SectorName returns the localized wind name for a compass sector.
func (c *Catalog) SectorName(s CompassSector) string {
	return c.sectors[s]
}

func (c *Catalog) advisory(cat models.Category, sev models.Severity, key copyKey) models.Advisory {
	text := c.advisories[key]
	return models.Advisory{
		Category: cat,
		Severity: sev,
		Icon:     copyIcons[key],
		Title:    text.Title,
		Message:  text.Message,
	}
}

var catalogs = map[string]*Catalog{
	"ja": japanese,
	"en": english,
}

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "ja"

// CatalogFor returns the catalog registered for locale.
func CatalogFor(locale string) (*Catalog, error) {
	c, ok := catalogs[locale]
	if !ok {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}
	return c, nil
}

// Locales lists the supported locales in sorted order.
func Locales() []string {
	out := make([]string, 0, len(catalogs))
	for l := range catalogs {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

var japanese = &Catalog{
	Locale: "ja",
	advisories: map[copyKey]Copy{
		copyHighHeat: {
			Title:   "高温注意",
			Message: "最高気温がかなり高めです。潅水を多めにして、作業は朝夕の涼しい時間に集中させましょう。",
		},
		copyMildHeat: {
			Title:   "やや高めな気温",
			Message: "日中は少し熱くなりそうです。ハウス内の換気と、作業者の熱中症対策を意識しましょう。",
		},
		copyLowTemp: {
			Title:   "低温注意",
			Message: "気温が低めです。防寒対策と、夜間の低温ストレスに注意してください。",
		},
		copyHeavyRain: {
			Title:   "大雨リスク",
			Message: "降水量が多い予報です。排水路の確認や、収穫・出荷のスケジュール調整を検討しましょう。",
		},
		copyShower: {
			Title:   "にわか雨の可能性",
			Message: "にわか雨の可能性があります。屋外資材や機械が濡れないように注意しておきましょう。",
		},
		copyStrongWind: {
			Title:   "強風注意",
			Message: "風がかなり強く吹く予報です。ハウスやトンネル、支柱・防虫ネットの固定を重点的に確認し飛ばされそうな資材は事前に片づけておきましょう。",
		},
		copyModerateWind: {
			Title:   "やや強い風",
			Message: "やや風が強い一日になりそうです。マルチやビニール、ネット・支柱の固定を再確認しておきましょう。",
		},
		copySouthStrong: {
			Title:   "南風＋強風による蒸れ・倒伏注意",
			Message: "南風かつ風がかなり強い予報です。ハウス内は高温多湿になりやすく、作物の蒸れや倒伏に注意が必要です。換気と支柱・ネットの固定を重点的に確認しましょう。",
		},
		copySouthHumid: {
			Title:   "南風による蒸れ注意",
			Message: "南風で温かく湿った空気が入りやすい予報です。病害発生に注意し、ハウス内の換気をこまめに行いましょう。",
		},
		copyNorthStrong: {
			Title:   "北風＋強風による低温・乾燥注意",
			Message: "北風かつ風が強い予報です。体感温度が大きく下がり、乾燥もしやすくなります。防寒対策と霜・乾燥ストレスに注意してください。",
		},
		copyNorthCooling: {
			Title:   "北風による冷え込み注意",
			Message: "北寄りの風で気温が下がりやすい見込みです。ハウスの保温や、夜間の冷え込み対策を意識しましょう。",
		},
		copyWestStrong: {
			Title:   "西風による強い乾燥注意",
			Message: "西風かつ風が強い予報です。葉や土が乾きやすくなります。潅水タイミングの前倒しや、マルチ・被覆の状態を確認しましょう。",
		},
		copyWestDrying: {
			Title:   "西風による乾燥傾向",
			Message: "西寄りの風でやや乾燥しやすい傾向があります。苗の乾燥や萎れに注意してください。",
		},
		copyEastMinor: {
			Title:   "東寄りの風の影響",
			Message: "東寄りの風が予想されます。大きなリスクは少ないですが、ハウスの開口部や風の抜け方を確認しておきましょう。",
		},
	},
	riskLabels: map[models.RiskLevel]string{
		models.RiskHigh:   "危険度高め",
		models.RiskMedium: "注意レベル",
		models.RiskLow:    "比較的おだやか",
	},
	severityLabels: map[models.Severity]string{
		models.SeverityHigh:   "レベル：高",
		models.SeverityMedium: "レベル：中",
		models.SeverityLow:    "レベル：低",
	},
	sectors: map[CompassSector]string{
		North:     "北風",
		Northeast: "北東の風",
		East:      "東風",
		Southeast: "南東の風",
		South:     "南風",
		Southwest: "南西の風",
		West:      "西風",
		Northwest: "北西の風",
	},
	dayTags: map[tagKind]string{
		tagHot:       "高温気味",
		tagCold:      "低温注意",
		tagHeavyRain: "雨量多め",
		tagShower:    "にわか雨",
	},
	NoAdvisories:   "特別な注意点は少なめの日です。いつも通りの作業計画で問題なさそうです。",
	FallbackNotice: "天気情報の取得に失敗したため、ダミーデータで表示しています。",
}

var english = &Catalog{
	Locale: "en",
	advisories: map[copyKey]Copy{
		copyHighHeat: {
			Title:   "High heat",
			Message: "Today's high is well above normal. Water generously and keep field work to the cool morning and evening hours.",
		},
		copyMildHeat: {
			Title:   "Warm day",
			Message: "It will get fairly warm during the day. Ventilate greenhouses and watch workers for heat stress.",
		},
		copyLowTemp: {
			Title:   "Low temperature",
			Message: "Temperatures are low. Protect crops from the cold and watch for night-time chill stress.",
		},
		copyHeavyRain: {
			Title:   "Heavy rain risk",
			Message: "Heavy rain is forecast. Check drainage ditches and consider moving harvest or shipping dates.",
		},
		copyShower: {
			Title:   "Passing showers",
			Message: "Showers are possible. Keep outdoor materials and machinery covered.",
		},
		copyStrongWind: {
			Title:   "Strong wind",
			Message: "Strong wind is forecast. Secure greenhouses, tunnels, stakes and insect nets, and stow anything that could blow away.",
		},
		copyModerateWind: {
			Title:   "Breezy day",
			Message: "It will be fairly windy. Re-check that mulch, plastic sheeting, nets and stakes are fastened.",
		},
		copySouthStrong: {
			Title:   "Strong south wind: humidity and lodging",
			Message: "A strong south wind is forecast. Greenhouses will turn hot and humid and crops may lodge. Ventilate and check stakes and nets.",
		},
		copySouthHumid: {
			Title:   "South wind: humidity",
			Message: "A south wind will bring warm, moist air. Watch for disease and ventilate greenhouses often.",
		},
		copyNorthStrong: {
			Title:   "Strong north wind: cold and dry",
			Message: "A strong north wind is forecast. It will feel much colder and the air will dry out. Guard against frost and drought stress.",
		},
		copyNorthCooling: {
			Title:   "North wind: cooling",
			Message: "A northerly wind will pull temperatures down. Keep greenhouses warm and prepare for a cold night.",
		},
		copyWestStrong: {
			Title:   "Strong west wind: drying",
			Message: "A strong west wind will dry out leaves and soil. Water earlier than usual and check mulch and row covers.",
		},
		copyWestDrying: {
			Title:   "West wind: drying trend",
			Message: "A westerly wind may dry things out a little. Watch seedlings for wilting.",
		},
		copyEastMinor: {
			Title:   "Easterly wind",
			Message: "An easterly wind is expected. Little risk overall, but check greenhouse openings and airflow.",
		},
	},
	riskLabels: map[models.RiskLevel]string{
		models.RiskHigh:   "High risk",
		models.RiskMedium: "Caution",
		models.RiskLow:    "Fairly calm",
	},
	severityLabels: map[models.Severity]string{
		models.SeverityHigh:   "Level: high",
		models.SeverityMedium: "Level: medium",
		models.SeverityLow:    "Level: low",
	},
	sectors: map[CompassSector]string{
		North:     "North wind",
		Northeast: "Northeast wind",
		East:      "East wind",
		Southeast: "Southeast wind",
		South:     "South wind",
		Southwest: "Southwest wind",
		West:      "West wind",
		Northwest: "Northwest wind",
	},
	dayTags: map[tagKind]string{
		tagHot:       "Hot",
		tagCold:      "Cold",
		tagHeavyRain: "Heavy rain",
		tagShower:    "Showers",
	},
	NoAdvisories:   "Nothing special to watch for today. Carry on with the usual work plan.",
	FallbackNotice: "Weather data could not be fetched, so sample data is shown.",
}
