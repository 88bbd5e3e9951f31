package config

const (
	defaultDateFormat        = "YYYYMMDD"
	defaultDirectoryTemplate = "{ext}/{date}"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
	defaultLogFile           = "mediasort.log"
)

// Default returns a Config populated with the built-in rule set.
func Default() Config {
	return Config{
		Global: Global{
			DateFormat:        defaultDateFormat,
			DirectoryTemplate: defaultDirectoryTemplate,
			CleanEmptyDirs:    true,
		},
		Rules: []Rule{
			{
				Name:              "High Quality Photos",
				Description:       "Large photos organized by year and month",
				Extensions:        []string{"jpg", "jpeg", "png"},
				MinSize:           "5MB",
				MaxSize:           "0",
				DirectoryTemplate: "Photos/{year}/{month}",
				DateFormat:        "YYYY/MM",
				Enabled:           true,
			},
			{
				Name:              "RAW Photos",
				Description:       "Camera raw files organized by full date",
				Extensions:        []string{"nef", "cr2", "cr3", "arw", "dng", "orf", "raf", "rw2"},
				MinSize:           "0",
				MaxSize:           "0",
				DirectoryTemplate: "RAW/{year}/{month}/{day}",
				DateFormat:        "YYYY/MM/DD",
				Enabled:           true,
			},
			{
				Name:              "Thumbnails",
				Description:       "Small images collected under Thumbnails",
				Extensions:        []string{"jpg", "jpeg", "png"},
				MinSize:           "0",
				MaxSize:           "5MB",
				DirectoryTemplate: "Thumbnails/{date}",
				DateFormat:        "YYYYMMDD",
				Enabled:           true,
			},
			{
				Name:              "Videos",
				Description:       "Video files organized by year",
				Extensions:        []string{"mp4", "mov", "avi", "mkv", "m4v", "wmv", "flv"},
				MinSize:           "0",
				MaxSize:           "0",
				DirectoryTemplate: "Videos/{year}",
				DateFormat:        "YYYY",
				Enabled:           true,
			},
			{
				Name:              "Music",
				Description:       "Audio files organized by format",
				Extensions:        []string{"mp3", "flac", "wav", "aac", "m4a"},
				MinSize:           "0",
				MaxSize:           "0",
				DirectoryTemplate: "Music/{ext}",
				Enabled:           true,
			},
		},
		ExtensionAliases: map[string][]string{
			"JPG":  {"jpg", "jpeg"},
			"TIFF": {"tif", "tiff"},
			"MPEG": {"mpg", "mpeg", "mpe"},
		},
		Exclude: Exclude{
			HiddenFiles: true,
			Directories: []string{".git", ".svn", "node_modules", "target", "__pycache__"},
			Patterns:    []string{"*.tmp", "*.bak", "*.swp", "desktop.ini", "Thumbs.db", ".DS_Store"},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			File:   defaultLogFile,
		},
	}
}
