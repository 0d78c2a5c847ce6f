package browser

const (
	header = "\"use strict\";\n(function() {\n"
	footer = "})();\n"
)

// registry is shared by every chunk loaded into the page.
const registry = `var registry = (self.__stitch__ = self.__stitch__ || { modules: {}, cache: {} });
`

// runtime is emitted once per evaluation asset.
const runtime = `
function require(name) {
  var cached = registry.cache[name];
  if (cached) {
    return cached.exports;
  }
  var factory = registry.modules[name];
  if (!factory) {
    throw new Error("stitch: module " + name + " is not loaded");
  }
  var module = { name: name, exports: {} };
  registry.cache[name] = module;
  factory(module, module.exports, require);
  return module.exports;
}

function load(url, kind) {
  return new Promise(function(resolve, reject) {
    var el;
    if (kind === "style") {
      el = document.createElement("link");
      el.rel = "stylesheet";
      el.href = url;
    } else {
      el = document.createElement("script");
      el.src = url;
      el.async = true;
    }
    el.onload = function() { resolve(); };
    el.onerror = function() { reject(new Error("stitch: failed to load " + url)); };
    document.head.appendChild(el);
  });
}
`
