package types

// RecordJSONSchema 输出契约的JSON Schema
// 下游消费者依赖固定的顶层键形状：缺失值是 null 或空数组，键永不省略
const RecordJSONSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "ResumeRecord",
  "type": "object",
  "required": ["contact", "summary", "experience", "education", "skills", "certifications", "projects"],
  "additionalProperties": false,
  "properties": {
    "contact": {
      "type": "object",
      "required": ["name", "email", "phone", "linkedin", "github", "links"],
      "additionalProperties": false,
      "properties": {
        "name": {"type": ["string", "null"]},
        "email": {"type": ["string", "null"]},
        "phone": {"type": ["string", "null"]},
        "linkedin": {"type": ["string", "null"]},
        "github": {"type": ["string", "null"]},
        "links": {"type": "array", "items": {"type": "string"}}
      }
    },
    "summary": {"type": ["string", "null"]},
    "experience": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["organization", "role", "location", "dates", "bullets"],
        "additionalProperties": false,
        "properties": {
          "organization": {"type": "string"},
          "role": {"type": "string"},
          "location": {"type": ["string", "null"]},
          "dates": {"$ref": "#/$defs/dateRange"},
          "bullets": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["institution", "degree", "gpa", "dates"],
        "additionalProperties": false,
        "properties": {
          "institution": {"type": "string"},
          "degree": {"type": "string"},
          "gpa": {"type": ["string", "null"]},
          "dates": {"$ref": "#/$defs/dateRange"}
        }
      }
    },
    "skills": {"type": "array", "items": {"type": "string"}},
    "certifications": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "issuer", "issued"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string"},
          "issuer": {"type": ["string", "null"]},
          "issued": {"$ref": "#/$defs/dateBound"}
        }
      }
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title", "url", "details"],
        "additionalProperties": false,
        "properties": {
          "title": {"type": "string"},
          "url": {"type": ["string", "null"]},
          "details": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  },
  "$defs": {
    "dateBound": {
      "type": "object",
      "required": ["kind", "year", "month"],
      "additionalProperties": false,
      "properties": {
        "kind": {"enum": ["resolved", "present", "unknown"]},
        "year": {"type": "integer"},
        "month": {"type": "integer", "minimum": 0, "maximum": 12}
      }
    },
    "dateRange": {
      "type": "object",
      "required": ["start", "end"],
      "additionalProperties": false,
      "properties": {
        "start": {"$ref": "#/$defs/dateBound"},
        "end": {"$ref": "#/$defs/dateBound"}
      }
    }
  }
}`
