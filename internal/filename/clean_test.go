package filename

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "diacritics", in: "Piò_Dead_Christ.pdf", want: "pio_dead_christ.pdf"},
		{name: "spaces and case", in: "My File Name.DOCX", want: "my_file_name.docx"},
		{name: "curly apostrophe", in: "Rome’s_File.txt", want: "rome-s_file.txt"},
		{name: "parentheses", in: "Report(2023).pdf", want: "report_2023.pdf"},
		{name: "underscore runs", in: "___Draft__File___.jpg", want: "draft_file.jpg"},
		{name: "edge separators", in: "_-Weird-Name-_.png", want: "weird-name.png"},
		{name: "version survives", in: "Résumé (Final) v2.0.pdf", want: "resume_final_v2.0.pdf"},
		{name: "accents and apostrophes", in: "Café-à-l'Ouest.doc", want: "cafe-a-l-ouest.doc"},
		{name: "already clean", in: "plain_name.txt", want: "plain_name.txt"},
		{name: "special characters", in: "Test---file__2025!!.txt", want: "test-file_2025.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMapRawExtension(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "IMG_0042.CR2", want: "IMG_0042.jpeg"},
		{in: "img_0042.cr3", want: "img_0042.jpeg"},
		{in: "photo.jpeg", want: "photo.jpeg"},
		{in: "photo.png", want: "photo.png"},
		{in: "document.pdf", want: "document.pdf"},
		{in: "noextension", want: "noextension"},
	}

	for _, tt := range tests {
		if got := MapRawExtension(tt.in); got != tt.want {
			t.Errorf("MapRawExtension(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
