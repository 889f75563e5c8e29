package ui

import (
	"fmt"
	"time"
)

// labels holds the fixed screen text for one locale.
type labels struct {
	loading       string
	current       string
	observedAt    string
	currentTemp   string
	todayRange    string
	precipitation string
	wind          string
	windFrom      string
	risk          string
	riskHint      string
	riskNote      string
	week          string
	weekHint      string
	today         string
	advisories    string
	advisoryHint  string
	help          string
	sources       map[string]string
	weekdays      [7]string
}

var screenLabels = map[string]labels{
	"ja": {
		loading:       "データ取得中...",
		current:       "%sの現在の天気",
		observedAt:    "%s 時点 (Open-Meteo API)",
		currentTemp:   "現在気温",
		todayRange:    "今日の予想気温",
		precipitation: "今日の合計降水量（合計）",
		wind:          "風",
		windFrom:      "風向 %s (%.0f°)",
		risk:          "今日の気象リスク評価",
		riskHint:      "気温・降水量・風の強さから、簡易的な危険度スコアを表示しています。",
		riskNote:      "※ あくまでも目安です。実際の作業計画では、作物の状態や圃場の条件も合わせて判断してください。",
		week:          "週間予報（Open-Meteo）",
		weekHint:      "7日分の予報から、気温と降水量の傾向を簡単に把握できます。",
		today:         "今日",
		advisories:    "今日の農作業メモ",
		advisoryHint:  "※ 気温・降水量・風の条件から、簡単なアドバイスを自動生成しています。",
		help:          "r: 再取得 • q: 終了",
		sources:       map[string]string{"live": "リアルタイム", "cache": "キャッシュ", "fallback": "サンプルデータ"},
		weekdays:      [7]string{"日", "月", "火", "水", "木", "金", "土"},
	},
	"en": {
		loading:       "Fetching data...",
		current:       "Current weather in %s",
		observedAt:    "as of %s (Open-Meteo API)",
		currentTemp:   "Temperature",
		todayRange:    "Today's forecast",
		precipitation: "Today's precipitation",
		wind:          "Wind",
		windFrom:      "from %s (%.0f°)",
		risk:          "Today's weather risk",
		riskHint:      "A simple risk score from temperature, precipitation and wind speed.",
		riskNote:      "This is a rough guide. Check crop and field conditions before planning work.",
		week:          "7-day forecast (Open-Meteo)",
		weekHint:      "Temperature and precipitation trends for the week.",
		today:         "Today",
		advisories:    "Today's field notes",
		advisoryHint:  "Generated automatically from temperature, precipitation and wind.",
		help:          "r: refresh • q: quit",
		sources:       map[string]string{"live": "live", "cache": "cached", "fallback": "sample data"},
		weekdays:      [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	},
}

func labelsFor(locale string) labels {
	if l, ok := screenLabels[locale]; ok {
		return l
	}
	return screenLabels["ja"]
}

// dayLabel renders a date like "10/17(土)".
func (l labels) dayLabel(d time.Time) string {
	return fmt.Sprintf("%d/%d(%s)", int(d.Month()), d.Day(), l.weekdays[d.Weekday()])
}
