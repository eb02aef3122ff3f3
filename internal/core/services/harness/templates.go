package harness

// Harness templates per target language. Section order is fixed and load
// bearing: determinism preamble first (seeding must happen before any
// candidate code runs), then the candidate code verbatim, then payload
// decoding, invocation, and verdict emission.

const pythonTemplate = `import random
random.seed({{.Seed}})
try:
    import numpy
    numpy.random.seed({{.Seed}})
except ImportError:
    pass

{{.CandidateCode}}

import base64 as _cv_base64
import json as _cv_json
import sys as _cv_sys

_cv_payload = _cv_json.loads(_cv_base64.b64decode("{{.Payload}}").decode("utf-8"))

try:
{{- if .CallExpression}}
    _cv_observed = {{.CallExpression}}
{{- else if .IsClassBased}}
    _cv_instance = {{.EntryPoint}}()
    _cv_instance.set_state(*_cv_payload["input_args"])
    _cv_observed = _cv_instance.compute()
{{- else}}
    _cv_observed = {{.EntryPoint}}(*_cv_payload["input_args"])
{{- end}}
except Exception as _cv_exc:
    _cv_sys.stderr.write("candidate raised %s: %s\n" % (type(_cv_exc).__name__, _cv_exc))
    _cv_sys.exit(1)

_cv_observed = _cv_json.loads(_cv_json.dumps(_cv_observed))
print("{{.ObservedPrefix}} " + _cv_json.dumps(_cv_observed))
if _cv_observed == _cv_payload.get("expected_output"):
    print("{{.PassToken}}")
else:
    _cv_sys.stderr.write("expected %s, got %s\n" % (_cv_json.dumps(_cv_payload.get("expected_output")), _cv_json.dumps(_cv_observed)))
    _cv_sys.exit(1)
`

const javascriptTemplate = `(function () {
  var seed = {{.Seed}};
  Math.random = function () {
    seed = (seed * 1103515245 + 12345) % 2147483648;
    return seed / 2147483648;
  };
})();

{{.CandidateCode}}

const _cvPayload = JSON.parse(Buffer.from("{{.Payload}}", "base64").toString("utf8"));

function _cvCanonical(value) {
  if (Array.isArray(value)) {
    return value.map(_cvCanonical);
  }
  if (value !== null && typeof value === "object") {
    const out = {};
    for (const key of Object.keys(value).sort()) {
      out[key] = _cvCanonical(value[key]);
    }
    return out;
  }
  return value;
}

function _cvDeepEqual(a, b) {
  return JSON.stringify(_cvCanonical(a)) === JSON.stringify(_cvCanonical(b));
}

let _cvObserved;
try {
{{- if .CallExpression}}
  _cvObserved = {{.CallExpression}};
{{- else if .IsClassBased}}
  const _cvInstance = new {{.EntryPoint}}();
  _cvInstance.setState(..._cvPayload.input_args);
  _cvObserved = _cvInstance.compute();
{{- else}}
  _cvObserved = {{.EntryPoint}}(..._cvPayload.input_args);
{{- end}}
} catch (err) {
  console.error("candidate threw: " + (err && err.stack ? err.stack : err));
  process.exit(1);
}

_cvObserved = JSON.parse(JSON.stringify(_cvObserved === undefined ? null : _cvObserved));
console.log("{{.ObservedPrefix}} " + JSON.stringify(_cvObserved));
if (_cvDeepEqual(_cvObserved, _cvPayload.expected_output)) {
  console.log("{{.PassToken}}");
} else {
  console.error("expected " + JSON.stringify(_cvPayload.expected_output) + ", got " + JSON.stringify(_cvObserved));
  process.exit(1);
}
`
