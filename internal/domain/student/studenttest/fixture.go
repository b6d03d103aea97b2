// Package studenttest provides the 25-record roster used across package tests.
package studenttest

import "github.com/nwongx/hatchways-assessment/internal/domain/student"

// Raws returns the fixture roster in endpoint order (ids "1".."25").
func Raws() []student.Raw {
	return []student.Raw{
		{
			City: "Fushë-Muhurr", Company: "Yadel", Email: "iorton0@imdb.com",
			FirstName: "Ingaberg", LastName: "Orton", ID: "1",
			Grades: []string{"78", "100", "92", "86", "89", "88", "91", "87"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/voluptasdictablanditiis.jpg",
			Skill:  "Oracle",
		},
		{
			City: "Sanghan", Company: "Avamm", Email: "cboards1@weibo.com",
			FirstName: "Clarke", LastName: "Boards", ID: "2",
			Grades: []string{"75", "89", "95", "93", "99", "82", "89", "76"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/voluptasautreprehenderit.jpg",
			Skill:  "Sports",
		},
		{
			City: "Kugesi", Company: "Skalith", Email: "lromanet2@wired.com",
			FirstName: "Laurens", LastName: "Romanet", ID: "3",
			Grades: []string{"88", "90", "79", "82", "81", "99", "94", "73"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/aspernaturnonsapiente.jpg",
			Skill:  "Employee Handbooks",
		},
		{
			City: "Krajan", Company: "Mybuzz", Email: "bskitt3@aboutads.info",
			FirstName: "Berti", LastName: "Skitt", ID: "4",
			Grades: []string{"88", "93", "92", "81", "95", "98", "77", "94"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/autautdeserunt.jpg",
			Skill:  "Nutrition Education",
		},
		{
			City: "Huiqi", Company: "Avavee", Email: "msummerley4@craigslist.org",
			FirstName: "Mureil", LastName: "Summerley", ID: "5",
			Grades: []string{"71", "81", "72", "92", "79", "82", "91", "90"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/consequaturdelectusquis.jpg",
			Skill:  "ISO 14971",
		},
		{
			City: "Jianghong", Company: "Twinte", Email: "rcoryndon5@cargocollective.com",
			FirstName: "Robbyn", LastName: "Coryndon", ID: "6",
			Grades: []string{"97", "92", "72", "99", "92", "92", "79", "96"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/autautdeserunt.jpg",
			Skill:  "Cinema 4D",
		},
		{
			City: "Sanxi", Company: "Buzzster", Email: "seykel6@examiner.com",
			FirstName: "Sheena", LastName: "Eykel", ID: "7",
			Grades: []string{"74", "95", "75", "95", "85", "97", "88", "85"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/utquamut.jpg",
			Skill:  "Ulead VideoStudio",
		},
		{
			City: "Huancheng", Company: "Edgeblab", Email: "mewen7@ycombinator.com",
			FirstName: "Minnnie", LastName: "Ewen", ID: "8",
			Grades: []string{"80", "100", "97", "78", "99", "99", "76", "85"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/nesciuntrerumlibero.jpg",
			Skill:  "Vulcan",
		},
		{
			City: "Luoxiong", Company: "Fadeo", Email: "riban8@hubpages.com",
			FirstName: "Rory", LastName: "Iban", ID: "9",
			Grades: []string{"70", "100", "75", "96", "83", "90", "94", "92"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/autemporroplaceat.jpg",
			Skill:  "EE4",
		},
		{
			City: "Toulon", Company: "Yakidoo", Email: "lroxby9@cam.ac.uk",
			FirstName: "Lenna", LastName: "Roxby", ID: "10",
			Grades: []string{"70", "99", "81", "83", "78", "95", "81", "76"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/doloribusquitempora.jpg",
			Skill:  "LPS",
		},
		{
			City: "Lazo", Company: "Photolist", Email: "rfitzalana@parallels.com",
			FirstName: "Rosalynd", LastName: "FitzAlan", ID: "11",
			Grades: []string{"98", "93", "78", "87", "99", "89", "97", "81"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/utquamut.jpg",
			Skill:  "Geography",
		},
		{
			City: "Bichura", Company: "Babblestorm", Email: "srapellib@adobe.com",
			FirstName: "Stephanie", LastName: "Rapelli", ID: "12",
			Grades: []string{"83", "97", "70", "96", "75", "98", "90", "71"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/enimpariaturoptio.jpg",
			Skill:  "Identity Management",
		},
		{
			City: "Chvalšiny", Company: "Mynte", Email: "mmacdirmidc@plala.or.jp",
			FirstName: "Maire", LastName: "MacDirmid", ID: "13",
			Grades: []string{"87", "73", "85", "98", "73", "95", "75", "97"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/aspernaturnonsapiente.jpg",
			Skill:  "Outdoor Advertising",
		},
		{
			City: "Itaparica", Company: "Photospace", Email: "nshepherdd@desdev.cn",
			FirstName: "Nicoline", LastName: "Shepherd", ID: "14",
			Grades: []string{"90", "73", "88", "95", "71", "100", "80", "86"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/nonipsaet.jpg",
			Skill:  "Amazon VPC",
		},
		{
			City: "Praia da Vitória", Company: "Vitz", Email: "ythornse@github.com",
			FirstName: "Yoshi", LastName: "Thorns", ID: "15",
			Grades: []string{"78", "78", "96", "92", "80", "82", "91", "99"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/voluptasdictablanditiis.jpg",
			Skill:  "DMR",
		},
		{
			City: "Sambir", Company: "Twitterwire", Email: "mtothef@shutterfly.com",
			FirstName: "Marna", LastName: "Tothe", ID: "16",
			Grades: []string{"88", "74", "76", "89", "75", "97", "75", "86"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/utquamut.jpg",
			Skill:  "PFI",
		},
		{
			City: "Sarulla", Company: "Blogpad", Email: "okearyg@g.co",
			FirstName: "Orelia", LastName: "Keary", ID: "17",
			Grades: []string{"78", "92", "86", "80", "82", "95", "76", "84"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/enimpariaturoptio.jpg",
			Skill:  "General Surgery",
		},
		{
			City: "Ochakovo-Matveyevskoye", Company: "Mydeo", Email: "mswaith@cafepress.com",
			FirstName: "Moses", LastName: "Swait", ID: "18",
			Grades: []string{"84", "82", "92", "74", "87", "98", "86", "73"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/velitnonquibusdam.jpg",
			Skill:  "Sales Tax",
		},
		{
			City: "Youxi Chengguanzhen", Company: "Avaveo", Email: "fnusseyi@skyrock.com",
			FirstName: "Fonsie", LastName: "Nussey", ID: "19",
			Grades: []string{"100", "75", "84", "91", "100", "97", "98", "87"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/remtemporavelit.jpg",
			Skill:  "Urbanism",
		},
		{
			City: "Limoges", Company: "Tazzy", Email: "srydingsj@phoca.cz",
			FirstName: "Skelly", LastName: "Rydings", ID: "20",
			Grades: []string{"89", "81", "77", "93", "96", "96", "70", "79"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/etporroalias.jpg",
			Skill:  "IFTA",
		},
		{
			City: "Łobżenica", Company: "Quatz", Email: "obrennekek@yellowbook.com",
			FirstName: "Olly", LastName: "Brenneke", ID: "21",
			Grades: []string{"81", "74", "77", "82", "74", "88", "86", "87"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/velitnonquibusdam.jpg",
			Skill:  "ATM Networks",
		},
		{
			City: "Divo", Company: "Gigazoom", Email: "nbadwickl@nifty.com",
			FirstName: "Norby", LastName: "Badwick", ID: "22",
			Grades: []string{"73", "99", "91", "92", "85", "96", "95", "73"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/delenitiestdolorum.jpg",
			Skill:  "Media Relations",
		},
		{
			City: "Sortavala", Company: "Eamia", Email: "mmichiem@nifty.com",
			FirstName: "Melody", LastName: "Michie", ID: "23",
			Grades: []string{"100", "83", "76", "71", "93", "95", "73", "88"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/sitlaborecorrupti.jpg",
			Skill:  "PC Games",
		},
		{
			City: "Taupo", Company: "Midel", Email: "jwillougheyn@psu.edu",
			FirstName: "Janice", LastName: "Willoughey", ID: "24",
			Grades: []string{"71", "80", "83", "99", "91", "95", "81", "75"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/dolordoloremassumenda.jpg",
			Skill:  "Kondor+",
		},
		{
			City: "Krajandadapmulyo", Company: "Wikibox", Email: "ggallymoreo@mashable.com",
			FirstName: "Geraldine", LastName: "Gallymore", ID: "25",
			Grades: []string{"97", "71", "89", "85", "85", "87", "92", "75"},
			Pic:    "https://storage.googleapis.com/hatchways-app.appspot.com/assessments/data/frontend/images/sitlaborecorrupti.jpg",
			Skill:  "WTL",
		},
	}
}

// Tags returns the tags preloaded on the fixture, keyed by id.
func Tags() map[string][]string {
	return map[string][]string{
		"1": {"t1", "t2", "t3"},
		"2": {"t4", "t5"},
		"3": {"t1"},
		"4": {"t2"},
		"5": {"t4"},
	}
}

// Records builds the fixture record map with tags applied, plus the ordered ids.
func Records() (map[string]*student.Student, []string) {
	raws := Raws()
	tags := Tags()
	records := make(map[string]*student.Student, len(raws))
	ids := make([]string, 0, len(raws))
	for _, r := range raws {
		s := student.New(r)
		for _, t := range tags[r.ID] {
			s.AddTag(t)
		}
		records[r.ID] = s
		ids = append(ids, r.ID)
	}
	return records, ids
}
