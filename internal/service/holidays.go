package service

// Holiday is a public holiday preset used by the bulk importer. Dates are
// Gregorian yyyy-MM-dd; names and sources are Thai, as they appear on the
// calendar.
type Holiday struct {
	Date   string
	Name   string
	Source string
}

// Thai public holidays, พ.ศ. 2568-2572. The 2568 set follows the cabinet
// resolution of 28 May 2567; later years combine projections with the
// lunar calendar.
var thaiHolidays = []Holiday{
	// 2568 (2025)
	{"2025-01-01", "วันขึ้นปีใหม่", "มติ ครม. 28 พ.ค. 67"},
	{"2025-02-12", "วันมาฆบูชา", "มติ ครม. 28 พ.ค. 67"},
	{"2025-04-06", "วันจักรี", "มติ ครม. 28 พ.ค. 67"},
	{"2025-04-13", "วันสงกรานต์", "มติ ครม. 28 พ.ค. 67"},
	{"2025-04-14", "วันสงกรานต์", "มติ ครม. 28 พ.ค. 67"},
	{"2025-04-15", "วันสงกรานต์", "มติ ครม. 28 พ.ค. 67"},
	{"2025-05-01", "วันแรงงานแห่งชาติ", "มติ ครม. 28 พ.ค. 67"},
	{"2025-05-04", "วันฉัตรมงคล", "มติ ครม. 28 พ.ค. 67"},
	{"2025-05-12", "วันวิสาขบูชา", "มติ ครม. 28 พ.ค. 67"},
	{"2025-06-03", "วันเฉลิมฯ สมเด็จพระนางเจ้าฯ พระบรมราชินี", "มติ ครม. 28 พ.ค. 67"},
	{"2025-07-10", "วันอาสาฬหบูชา", "มติ ครม. 28 พ.ค. 67"},
	{"2025-07-11", "วันเข้าพรรษา", "มติ ครม. 28 พ.ค. 67"},
	{"2025-07-28", "วันเฉลิมฯ ร.10", "มติ ครม. 28 พ.ค. 67"},
	{"2025-08-12", "วันเฉลิมฯ สมเด็จพระบรมราชชนนีพันปีหลวง", "มติ ครม. 28 พ.ค. 67"},
	{"2025-10-13", "วันคล้ายวันสวรรคต ร.9", "มติ ครม. 28 พ.ค. 67"},
	{"2025-10-23", "วันปิยมหาราช", "มติ ครม. 28 พ.ค. 67"},
	{"2025-12-05", "วันคล้ายวันพระบรมราชสมภพ ร.9 / วันชาติ / วันพ่อแห่งชาติ", "มติ ครม. 28 พ.ค. 67"},
	{"2025-12-10", "วันรัฐธรรมนูญ", "มติ ครม. 28 พ.ค. 67"},
	{"2025-12-31", "วันสิ้นปี", "มติ ครม. 28 พ.ค. 67"},

	// 2569 (2026)
	{"2026-01-01", "วันขึ้นปีใหม่", "คาดการณ์ 2569"},
	{"2026-01-02", "วันหยุดชดเชยวันขึ้นปีใหม่", "คาดการณ์ 2569"},
	{"2026-03-01", "วันมาฆบูชา", "ปฏิทินจันทรคติ 2569"},
	{"2026-04-06", "วันจักรี", "คาดการณ์ 2569"},
	{"2026-04-13", "วันสงกรานต์", "คาดการณ์ 2569"},
	{"2026-04-14", "วันสงกรานต์", "คาดการณ์ 2569"},
	{"2026-04-15", "วันสงกรานต์", "คาดการณ์ 2569"},
	{"2026-05-01", "วันแรงงานแห่งชาติ", "คาดการณ์ 2569"},
	{"2026-05-04", "วันฉัตรมงคล", "คาดการณ์ 2569"},
	{"2026-05-20", "วันวิสาขบูชา", "ปฏิทินจันทรคติ 2569"},
	{"2026-06-03", "วันเฉลิมฯ สมเด็จพระนางเจ้าฯ พระบรมราชินี", "คาดการณ์ 2569"},
	{"2026-07-18", "วันอาสาฬหบูชา", "ปฏิทินจันทรคติ 2569"},
	{"2026-07-19", "วันเข้าพรรษา", "ปฏิทินจันทรคติ 2569"},
	{"2026-07-28", "วันเฉลิมฯ ร.10", "คาดการณ์ 2569"},
	{"2026-08-12", "วันเฉลิมฯ สมเด็จพระบรมราชชนนีพันปีหลวง", "คาดการณ์ 2569"},
	{"2026-10-13", "วันคล้ายวันสวรรคต ร.9", "คาดการณ์ 2569"},
	{"2026-10-23", "วันปิยมหาราช", "คาดการณ์ 2569"},
	{"2026-12-05", "วันคล้ายวันพระบรมราชสมภพ ร.9 / วันชาติ / วันพ่อแห่งชาติ", "คาดการณ์ 2569"},
	{"2026-12-10", "วันรัฐธรรมนูญ", "คาดการณ์ 2569"},
	{"2026-12-31", "วันสิ้นปี", "คาดการณ์ 2569"},

	// 2570 (2027)
	{"2027-01-01", "วันขึ้นปีใหม่", "คาดการณ์ 2570"},
	{"2027-02-18", "วันมาฆบูชา", "ปฏิทินจันทรคติ 2570"},
	{"2027-04-06", "วันจักรี", "คาดการณ์ 2570"},
	{"2027-04-13", "วันสงกรานต์", "คาดการณ์ 2570"},
	{"2027-04-14", "วันสงกรานต์", "คาดการณ์ 2570"},
	{"2027-04-15", "วันสงกรานต์", "คาดการณ์ 2570"},
	{"2027-05-01", "วันแรงงานแห่งชาติ", "คาดการณ์ 2570"},
	{"2027-05-04", "วันฉัตรมงคล", "คาดการณ์ 2570"},
	{"2027-05-09", "วันวิสาขบูชา", "ปฏิทินจันทรคติ 2570"},
	{"2027-06-03", "วันเฉลิมฯ สมเด็จพระนางเจ้าฯ พระบรมราชินี", "คาดการณ์ 2570"},
	{"2027-07-07", "วันอาสาฬหบูชา", "ปฏิทินจันทรคติ 2570"},
	{"2027-07-08", "วันเข้าพรรษา", "ปฏิทินจันทรคติ 2570"},
	{"2027-07-28", "วันเฉลิมฯ ร.10", "คาดการณ์ 2570"},
	{"2027-08-12", "วันเฉลิมฯ สมเด็จพระบรมราชชนนีพันปีหลวง", "คาดการณ์ 2570"},
	{"2027-10-13", "วันคล้ายวันสวรรคต ร.9", "คาดการณ์ 2570"},
	{"2027-10-23", "วันปิยมหาราช", "คาดการณ์ 2570"},
	{"2027-12-05", "วันคล้ายวันพระบรมราชสมภพ ร.9 / วันชาติ / วันพ่อแห่งชาติ", "คาดการณ์ 2570"},
	{"2027-12-10", "วันรัฐธรรมนูญ", "คาดการณ์ 2570"},
	{"2027-12-31", "วันสิ้นปี", "คาดการณ์ 2570"},

	// 2571 (2028)
	{"2028-01-01", "วันขึ้นปีใหม่", "คาดการณ์ 2571"},
	{"2028-03-07", "วันมาฆบูชา", "ปฏิทินจันทรคติ 2571"},
	{"2028-04-06", "วันจักรี", "คาดการณ์ 2571"},
	{"2028-04-13", "วันสงกรานต์", "คาดการณ์ 2571"},
	{"2028-04-14", "วันสงกรานต์", "คาดการณ์ 2571"},
	{"2028-04-15", "วันสงกรานต์", "คาดการณ์ 2571"},
	{"2028-05-01", "วันแรงงานแห่งชาติ", "คาดการณ์ 2571"},
	{"2028-05-04", "วันฉัตรมงคล", "คาดการณ์ 2571"},
	{"2028-05-28", "วันวิสาขบูชา", "ปฏิทินจันทรคติ 2571"},
	{"2028-06-03", "วันเฉลิมฯ สมเด็จพระนางเจ้าฯ พระบรมราชินี", "คาดการณ์ 2571"},
	{"2028-07-26", "วันอาสาฬหบูชา", "ปฏิทินจันทรคติ 2571"},
	{"2028-07-27", "วันเข้าพรรษา", "ปฏิทินจันทรคติ 2571"},
	{"2028-07-28", "วันเฉลิมฯ ร.10", "คาดการณ์ 2571"},
	{"2028-08-12", "วันเฉลิมฯ สมเด็จพระบรมราชชนนีพันปีหลวง", "คาดการณ์ 2571"},
	{"2028-10-13", "วันคล้ายวันสวรรคต ร.9", "คาดการณ์ 2571"},
	{"2028-10-23", "วันปิยมหาราช", "คาดการณ์ 2571"},
	{"2028-12-05", "วันคล้ายวันพระบรมราชสมภพ ร.9 / วันชาติ / วันพ่อแห่งชาติ", "คาดการณ์ 2571"},
	{"2028-12-10", "วันรัฐธรรมนูญ", "คาดการณ์ 2571"},
	{"2028-12-31", "วันสิ้นปี", "คาดการณ์ 2571"},

	// 2572 (2029)
	{"2029-01-01", "วันขึ้นปีใหม่", "คาดการณ์ 2572"},
	{"2029-02-24", "วันมาฆบูชา", "ปฏิทินจันทรคติ 2572"},
	{"2029-04-06", "วันจักรี", "คาดการณ์ 2572"},
	{"2029-04-13", "วันสงกรานต์", "คาดการณ์ 2572"},
	{"2029-04-14", "วันสงกรานต์", "คาดการณ์ 2572"},
	{"2029-04-15", "วันสงกรานต์", "คาดการณ์ 2572"},
	{"2029-05-01", "วันแรงงานแห่งชาติ", "คาดการณ์ 2572"},
	{"2029-05-04", "วันฉัตรมงคล", "คาดการณ์ 2572"},
	{"2029-05-17", "วันวิสาขบูชา", "ปฏิทินจันทรคติ 2572"},
	{"2029-06-03", "วันเฉลิมฯ สมเด็จพระนางเจ้าฯ พระบรมราชินี", "คาดการณ์ 2572"},
	{"2029-07-15", "วันอาสาฬหบูชา", "ปฏิทินจันทรคติ 2572"},
	{"2029-07-16", "วันเข้าพรรษา", "ปฏิทินจันทรคติ 2572"},
	{"2029-07-28", "วันเฉลิมฯ ร.10", "คาดการณ์ 2572"},
	{"2029-08-12", "วันเฉลิมฯ สมเด็จพระบรมราชชนนีพันปีหลวง", "คาดการณ์ 2572"},
	{"2029-10-13", "วันคล้ายวันสวรรคต ร.9", "คาดการณ์ 2572"},
	{"2029-10-23", "วันปิยมหาราช", "คาดการณ์ 2572"},
	{"2029-12-05", "วันคล้ายวันพระบรมราชสมภพ ร.9 / วันชาติ / วันพ่อแห่งชาติ", "คาดการณ์ 2572"},
	{"2029-12-10", "วันรัฐธรรมนูญ", "คาดการณ์ 2572"},
	{"2029-12-31", "วันสิ้นปี", "คาดการณ์ 2572"},
}

var holidaysByDate = func() map[string]Holiday {
	m := make(map[string]Holiday, len(thaiHolidays))
	for _, h := range thaiHolidays {
		m[h.Date] = h
	}
	return m
}()

// HolidayOn returns the holiday preset for a yyyy-MM-dd date, if any.
func HolidayOn(date string) (Holiday, bool) {
	h, ok := holidaysByDate[date]
	return h, ok
}
