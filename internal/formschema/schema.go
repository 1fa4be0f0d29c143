// Package formschema defines which SPMB registration fields are shown on the
// public form and which of them are mandatory.
package formschema

type FieldKey string

const (
	NamaLengkap          FieldKey = "namaLengkap"
	TempatLahir          FieldKey = "tempatLahir"
	TanggalLahir         FieldKey = "tanggalLahir"
	JenisKelamin         FieldKey = "jenisKelamin"
	AlamatLengkap        FieldKey = "alamatLengkap"
	NoHP                 FieldKey = "noHP"
	Email                FieldKey = "email"
	NamaAyah             FieldKey = "namaAyah"
	PekerjaanAyah        FieldKey = "pekerjaanAyah"
	NamaIbu              FieldKey = "namaIbu"
	PekerjaanIbu         FieldKey = "pekerjaanIbu"
	NoHPOrangtua         FieldKey = "noHPOrangtua"
	AsalSekolah          FieldKey = "asalSekolah"
	AlamatSekolah        FieldKey = "alamatSekolah"
	Prestasi             FieldKey = "prestasi"
	JalurPendaftaran     FieldKey = "jalurPendaftaran"
	GelombangPendaftaran FieldKey = "gelombangPendaftaran"
	UploadDokumen        FieldKey = "uploadDokumen"
)

// FieldKeys lists every field in definition order.
var FieldKeys = []FieldKey{
	NamaLengkap, TempatLahir, TanggalLahir, JenisKelamin, AlamatLengkap, NoHP, Email,
	NamaAyah, PekerjaanAyah, NamaIbu, PekerjaanIbu, NoHPOrangtua,
	AsalSekolah, AlamatSekolah,
	Prestasi, JalurPendaftaran, GelombangPendaftaran,
	UploadDokumen,
}

type SectionKey string

const (
	SectionSiswa    SectionKey = "siswa"
	SectionOrangtua SectionKey = "orangtua"
	SectionSekolah  SectionKey = "sekolah"
	SectionTambahan SectionKey = "tambahan"
	SectionUpload   SectionKey = "upload"
)

type Section struct {
	Key   SectionKey `json:"key"`
	Title string     `json:"title"`
}

// Sections is the fixed display order.
var Sections = []Section{
	{Key: SectionSiswa, Title: "Data Siswa"},
	{Key: SectionOrangtua, Title: "Data Orangtua"},
	{Key: SectionSekolah, Title: "Data Sekolah"},
	{Key: SectionTambahan, Title: "Data Tambahan"},
	{Key: SectionUpload, Title: "Upload Dokumen"},
}

type FieldConfig struct {
	Enabled  bool       `json:"enabled"`
	Required bool       `json:"required"`
	Label    string     `json:"label"`
	Section  SectionKey `json:"section"`
}

// Schema always carries the full FieldKeys set.
type Schema map[FieldKey]FieldConfig

// Default returns a fresh copy of the built-in schema.
func Default() Schema {
	return Schema{
		NamaLengkap:   {Enabled: true, Required: true, Label: "Nama Lengkap", Section: SectionSiswa},
		TempatLahir:   {Enabled: true, Required: true, Label: "Tempat Lahir", Section: SectionSiswa},
		TanggalLahir:  {Enabled: true, Required: true, Label: "Tanggal Lahir", Section: SectionSiswa},
		JenisKelamin:  {Enabled: true, Required: true, Label: "Jenis Kelamin", Section: SectionSiswa},
		AlamatLengkap: {Enabled: true, Required: true, Label: "Alamat Lengkap", Section: SectionSiswa},
		NoHP:          {Enabled: true, Required: false, Label: "No. HP Siswa", Section: SectionSiswa},
		Email:         {Enabled: true, Required: false, Label: "Email", Section: SectionSiswa},

		NamaAyah:      {Enabled: true, Required: true, Label: "Nama Ayah", Section: SectionOrangtua},
		PekerjaanAyah: {Enabled: true, Required: true, Label: "Pekerjaan Ayah", Section: SectionOrangtua},
		NamaIbu:       {Enabled: true, Required: true, Label: "Nama Ibu", Section: SectionOrangtua},
		PekerjaanIbu:  {Enabled: true, Required: true, Label: "Pekerjaan Ibu", Section: SectionOrangtua},
		NoHPOrangtua:  {Enabled: true, Required: true, Label: "No. HP Orangtua", Section: SectionOrangtua},

		AsalSekolah:   {Enabled: true, Required: true, Label: "Asal Sekolah", Section: SectionSekolah},
		AlamatSekolah: {Enabled: true, Required: false, Label: "Alamat Sekolah", Section: SectionSekolah},

		Prestasi:             {Enabled: true, Required: false, Label: "Prestasi", Section: SectionTambahan},
		JalurPendaftaran:     {Enabled: true, Required: true, Label: "Jalur Pendaftaran", Section: SectionSekolah},
		GelombangPendaftaran: {Enabled: true, Required: true, Label: "Gelombang Pendaftaran", Section: SectionSekolah},

		UploadDokumen: {Enabled: true, Required: false, Label: "Upload Foto & Dokumen", Section: SectionUpload},
	}
}

// IsKnown reports whether k is one of the defined field keys.
func IsKnown(k FieldKey) bool {
	_, ok := Default()[k]
	return ok
}

func (s Schema) Clone() Schema {
	out := make(Schema, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

type FieldView struct {
	Key FieldKey `json:"key"`
	FieldConfig
}

type SectionView struct {
	Section
	Fields []FieldView `json:"fields"`
}

// Grouped returns fields grouped by section in display order. With
// enabledOnly set, disabled fields and sections left empty are skipped.
func (s Schema) Grouped(enabledOnly bool) []SectionView {
	out := make([]SectionView, 0, len(Sections))
	for _, sec := range Sections {
		view := SectionView{Section: sec, Fields: []FieldView{}}
		for _, k := range FieldKeys {
			cfg, ok := s[k]
			if !ok || cfg.Section != sec.Key {
				continue
			}
			if enabledOnly && !cfg.Enabled {
				continue
			}
			view.Fields = append(view.Fields, FieldView{Key: k, FieldConfig: cfg})
		}
		if enabledOnly && len(view.Fields) == 0 {
			continue
		}
		out = append(out, view)
	}
	return out
}

// RequiredKeys lists the fields a submission must fill.
func (s Schema) RequiredKeys() []FieldKey {
	var out []FieldKey
	for _, k := range FieldKeys {
		if cfg := s[k]; cfg.Enabled && cfg.Required {
			out = append(out, k)
		}
	}
	return out
}
