package config

// Projectfile represents the structure of the svgmake.yaml project file.
// Unset fields keep their built-in defaults.
type Projectfile struct {
	SourceDir      string      `yaml:"sourceDir"`
	BuildDir       string      `yaml:"buildDir"`
	Output         string      `yaml:"output"`
	Rasterizer     string      `yaml:"rasterizer"`
	RasterizerPath string      `yaml:"rasterizerPath"`
	PrivatePrefix  string      `yaml:"privatePrefix"`
	Metadata       MetadataDTO `yaml:"metadata"`
	Preview        PreviewDTO  `yaml:"preview"`
	Archive        ArchiveDTO  `yaml:"archive"`
}

// MetadataDTO locates the version string inside the metadata file.
type MetadataDTO struct {
	File    string `yaml:"file"`
	Section string `yaml:"section"`
	Key     string `yaml:"key"`
}

// PreviewDTO describes the preview image.
type PreviewDTO struct {
	Source string `yaml:"source"`
	Output string `yaml:"output"`
}

// ArchiveDTO describes the package archive.
type ArchiveDTO struct {
	Extension string `yaml:"extension"`
}
