package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	message.SetString(lang, "app.name", "Portal de Administração de Alunos")
	message.SetString(lang, "title.page", "%s | Portal de Administração de Alunos")
	message.SetString(lang, "nav.students", "Alunos")
	message.SetString(lang, "nav.add_student", "Adicionar Aluno")
	message.SetString(lang, "nav.language", "Idioma")
	message.SetString(lang, "nav.lang_en", "English")
	message.SetString(lang, "nav.lang_pt_br", "Português (Brasil)")

	message.SetString(lang, "students.title", "Alunos")
	message.SetString(lang, "students.empty", "Nenhum aluno para exibir.")
	message.SetString(lang, "students.column.first_name", "Nome")
	message.SetString(lang, "students.column.last_name", "Sobrenome")
	message.SetString(lang, "students.column.date_of_birth", "Data de Nascimento")
	message.SetString(lang, "students.column.email", "E-mail")
	message.SetString(lang, "students.column.mobile", "Celular")
	message.SetString(lang, "students.column.gender", "Gênero")
	message.SetString(lang, "students.action.edit", "Editar")

	message.SetString(lang, "student.title.new", "Adicionar Novo Aluno")
	message.SetString(lang, "student.title.edit", "Editar Aluno")
	message.SetString(lang, "student.title.none", "Aluno")
	message.SetString(lang, "student.none_selected", "Escolha um aluno na lista para ver o perfil.")
	message.SetString(lang, "student.field.first_name", "Nome")
	message.SetString(lang, "student.field.last_name", "Sobrenome")
	message.SetString(lang, "student.field.date_of_birth", "Data de Nascimento")
	message.SetString(lang, "student.field.email", "E-mail")
	message.SetString(lang, "student.field.mobile", "Celular")
	message.SetString(lang, "student.field.gender", "Gênero")
	message.SetString(lang, "student.field.physical_address", "Endereço Residencial")
	message.SetString(lang, "student.field.postal_address", "Endereço Postal")
	message.SetString(lang, "student.field.profile_image", "Foto de Perfil")
	message.SetString(lang, "student.gender.placeholder", "Selecione um gênero")
	message.SetString(lang, "student.action.add", "Adicionar")
	message.SetString(lang, "student.action.update", "Atualizar")
	message.SetString(lang, "student.action.delete", "Excluir")
	message.SetString(lang, "student.action.upload", "Enviar Imagem")
	message.SetString(lang, "student.action.back", "Voltar para Alunos")

	message.SetString(lang, "student.notice.updated", "Aluno atualizado com sucesso")
	message.SetString(lang, "student.notice.added", "Aluno adicionado com sucesso")
	message.SetString(lang, "student.notice.deleted", "Aluno excluído com sucesso")
	message.SetString(lang, "student.notice.image_updated", "Foto de perfil atualizada")

	message.SetString(lang, "student.validation.required", "Este campo é obrigatório.")
	message.SetString(lang, "student.validation.email", "Informe um e-mail válido.")
	message.SetString(lang, "student.validation.date", "Informe a data como AAAA-MM-DD.")
	message.SetString(lang, "student.validation.mobile", "Informe um número de celular válido.")
	message.SetString(lang, "student.validation.invalid", "Este valor não é válido.")

	message.SetString(lang, "web.error.page_title_not_found", "Não Encontrado | Portal de Administração de Alunos")
	message.SetString(lang, "web.error.page_title_server_error", "Erro | Portal de Administração de Alunos")
	message.SetString(lang, "web.error.title_not_found", "Página não encontrada")
	message.SetString(lang, "web.error.title_server_error", "Algo deu errado")
	message.SetString(lang, "web.error.message_not_found", "A página que você procura não existe.")
	message.SetString(lang, "web.error.message_server_error", "Não foi possível concluir sua solicitação. Tente novamente.")
	message.SetString(lang, "web.error.action_back_to_students", "Voltar para Alunos")
	message.SetString(lang, "error.web.message.cross_origin_request", "Envios de formulário de outra origem não são permitidos.")
	message.SetString(lang, "error.web.message.invalid_form", "Não foi possível ler o formulário enviado.")
	message.SetString(lang, "error.web.message.student_api_unavailable", "O serviço de alunos não está configurado.")
}
