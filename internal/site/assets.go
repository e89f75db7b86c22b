package site

// URL paths of the assets every page references. The server and the
// static exporter both publish files under them.
const (
	FontsStylesheetPath = "/_koes/fonts.css"
	StaticPrefix        = "/_koes/static/"
	FontsPrefix         = "/fonts/"
	BuildIDPath         = "/_koes/BUILD_ID"
	BuildManifestPath   = "/_koes/build-manifest.json"
)

// Stylesheets are linked from every page in this order.
var Stylesheets = []string{
	FontsStylesheetPath,
	StaticPrefix + "styles.css",
}
